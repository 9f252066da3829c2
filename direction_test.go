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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRotate60IsSixCycle checks that _rotate60ccw is the group inverse
// of _rotate60cw and that 6 successive CCW rotations return to start,
// for every non-center digit (spec.md S:4.1's 6-element cycle).
func TestRotate60IsSixCycle(t *testing.T) {
	for d := CENTER_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		got := d
		for i := 0; i < 6; i++ {
			got = _rotate60ccw(got)
		}
		assert.Equalf(t, d, got, "digit %d should return to itself after 6 CCW rotations", d)

		assert.Equal(t, d, _rotate60cw(_rotate60ccw(d)))
		assert.Equal(t, d, _rotate60ccw(_rotate60cw(d)))
	}
}

// TestRotate60FixesCenter checks CENTER_DIGIT is a fixed point of both
// rotation directions.
func TestRotate60FixesCenter(t *testing.T) {
	assert.Equal(t, CENTER_DIGIT, _rotate60ccw(CENTER_DIGIT))
	assert.Equal(t, CENTER_DIGIT, _rotate60cw(CENTER_DIGIT))
}
