// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3

import "github.com/h3-geo/h3/internal/xmath"

func abs(x int) int {
	return xmath.Abs(x)
}

func max(a, b int) int {
	return xmath.Max(a, b)
}

// _ipow does integer exponentiation efficiently.
//
// Return the exponentiated value
func _ipow(base, exp int) int {
	return xmath.IPow(base, exp)
}
