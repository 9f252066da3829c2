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

// TestCompactUncompactRoundTrip checks spec.md's "uncompact(compact(S),
// res(S[0])) == S as sets" invariant over a full set of a resolution-0
// cell's resolution-1 children.
func TestCompactUncompactRoundTrip(t *testing.T) {
	origin := H3_INIT
	H3_SET_MODE(&origin, H3_HEXAGON_MODE)
	H3_SET_BASE_CELL(&origin, 10)
	H3_SET_RESOLUTION(&origin, 0)
	require.True(t, H3IsValid(origin))

	children := make([]H3Index, 0, MaxH3ToChildrenSize(origin, 1))
	H3ToChildren(origin, 1, &children)
	require.NotEmpty(t, children)

	compacted, err := Compact(children)
	require.NoError(t, err)
	assert.Equal(t, []H3Index{origin}, compacted)

	uncompacted, err := Uncompact(compacted, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, children, uncompacted)
}

// TestCompactRejectsDuplicates checks the duplicate-detection contract
// spec.md S:4.6 calls out explicitly.
func TestCompactRejectsDuplicates(t *testing.T) {
	origin := H3_INIT
	H3_SET_MODE(&origin, H3_HEXAGON_MODE)
	H3_SET_BASE_CELL(&origin, 3)
	H3_SET_RESOLUTION(&origin, 0)

	children := make([]H3Index, 0, MaxH3ToChildrenSize(origin, 1))
	H3ToChildren(origin, 1, &children)
	duped := append(children, children[0])

	_, err := Compact(duped)
	assert.ErrorIs(t, err, ErrCompactDuplicate)
}
