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
	"github.com/stretchr/testify/require"
)

// TestPentagonLeadingDigitNeverK holds for every pentagon at every
// resolution: its first non-zero digit is never K, since the K
// subsequence is the deleted one under a pentagon.
func TestPentagonLeadingDigitNeverK(t *testing.T) {
	for res := 0; res <= 3; res++ {
		pentagons := make([]H3Index, NUM_PENTAGONS)
		GetPentagonIndexes(res, &pentagons)
		for _, p := range pentagons {
			require.True(t, H3IsValid(p))
			require.True(t, H3IsPentagon(p))
			assert.NotEqual(t, K_AXES_DIGIT, _h3LeadingNonZeroDigit(p))
		}
	}
}

// TestPentagonChildrenCount checks the two-level pentagon expansion
// count (resolution 1 down to resolution 3): each step excludes the
// K-digit subsequence exactly once, at the first non-zero digit. Of
// the 6 immediate children, 5 leave the pentagon onto ordinary hexagon
// subtrees (7 children each) and 1 remains on the pentagon's own
// center chain (6 children, excluding K again): 5*7 + 1*6 = 41 total,
// out of the 49-slot (7^2) digit space. H3ToChildren never emits a
// null placeholder for an excluded slot, so the raw count is asserted
// against len(children) directly.
func TestPentagonChildrenCount(t *testing.T) {
	pentagons := make([]H3Index, NUM_PENTAGONS)
	GetPentagonIndexes(1, &pentagons)
	require.NotEmpty(t, pentagons)

	children := make([]H3Index, 0, MaxH3ToChildrenSize(pentagons[0], 3))
	H3ToChildren(pentagons[0], 3, &children)

	const maxSlots = 7 * 7
	want := 5*7 + 1*6
	assert.Equal(t, want, len(children))
	assert.Less(t, len(children), maxSlots)
}
