// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package array

// InsertAt inserts an element into a slice at a given index, shifting all
// later elements up by one.  If the index is beyond the end of the slice, the
// element is appended.  The original slice is not modified.
func InsertAt[T any](items []T, element T, index uint) []T {
	n := uint(len(items))
	//
	if index >= n {
		return append(items, element)
	}
	//
	nitems := make([]T, n+1)
	copy(nitems, items[:index])
	copy(nitems[index+1:], items[index:])
	nitems[index] = element
	//
	return nitems
}

// RemoveAt removes the element at a given index from a slice.  Observe that
// this reuses the underlying storage of the slice, hence the caller must own
// it.  An out-of-bounds index leaves the slice unchanged.
func RemoveAt[T any](items []T, index uint) []T {
	n := uint(len(items))
	//
	if index < n {
		items = append(items[:index], items[index+1:]...)
	}
	//
	return items
}

// Map constructs a fresh slice by applying a given function to each element of
// a slice, preserving order.
func Map[T any, U any](items []T, fn func(T) U) []U {
	nitems := make([]U, len(items))
	//
	for i, item := range items {
		nitems[i] = fn(item)
	}
	//
	return nitems
}
