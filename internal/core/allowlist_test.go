package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depwarden/internal/types"
)

type testOverlaySource struct {
	overlays map[string]types.Overlay
	err      error
}

func (t testOverlaySource) LoadOverlay(path string) (types.Overlay, error) {
	if t.err != nil {
		return types.Overlay{}, t.err
	}
	overlay, ok := t.overlays[path]
	if !ok {
		return types.Overlay{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("allowlist file not found: " + path)
	}
	return overlay, nil
}

func TestBuildApproved(t *testing.T) {
	assembler := NewAllowlistAssembler(testOverlaySource{})
	cfg := types.RootConfig{
		Path:       "pyproject.toml",
		Allow:      []string{"requests==2.31.0", "pytest==7.4.0", "Requests==2.31.0"},
		HasSection: true,
		HasAllow:   true,
	}

	set, err := assembler.BuildApproved(t.Context(), cfg)
	require.NoError(t, err)

	assert.Len(t, set.Raw, 3, "raw entries keep duplicates for display")
	assert.Len(t, set.Names, 2, "membership collapses normalized duplicates")
	assert.Contains(t, set.Names, "requests")
	assert.Contains(t, set.Names, "pytest")
}

func TestBuildApprovedMissingSection(t *testing.T) {
	assembler := NewAllowlistAssembler(testOverlaySource{})

	for _, cfg := range []types.RootConfig{
		{Path: "pyproject.toml"},
		{Path: "pyproject.toml", HasSection: true},
	} {
		_, err := assembler.BuildApproved(t.Context(), cfg)
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	}
}

func TestBuildApprovedMergesOverlays(t *testing.T) {
	assembler := NewAllowlistAssembler(testOverlaySource{
		overlays: map[string]types.Overlay{
			"repo/shared.yaml": {Path: "repo/shared.yaml", Version: "v1", Allow: []string{"rich>=13.0"}},
		},
	})
	cfg := types.RootConfig{
		Path:       "repo/pyproject.toml",
		Allow:      []string{"requests==2.31.0"},
		Allowlists: []string{"shared.yaml"},
		HasSection: true,
		HasAllow:   true,
	}

	set, err := assembler.BuildApproved(t.Context(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"requests==2.31.0", "rich>=13.0"}, set.Raw)
	assert.Contains(t, set.Names, "rich")
}

func TestBuildApprovedOverlayFailureIsFatal(t *testing.T) {
	assembler := NewAllowlistAssembler(testOverlaySource{})
	cfg := types.RootConfig{
		Path:       "pyproject.toml",
		Allow:      []string{"requests==2.31.0"},
		Allowlists: []string{"missing.yaml"},
		HasSection: true,
		HasAllow:   true,
	}

	_, err := assembler.BuildApproved(t.Context(), cfg)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestBuildApprovedIgnoresDegenerateEntries(t *testing.T) {
	assembler := NewAllowlistAssembler(testOverlaySource{})
	cfg := types.RootConfig{
		Path:       "pyproject.toml",
		Allow:      []string{"==1.0", "", "requests==2.31.0"},
		HasSection: true,
		HasAllow:   true,
	}

	set, err := assembler.BuildApproved(t.Context(), cfg)
	require.NoError(t, err)

	assert.Len(t, set.Names, 1, "entries without a name never enter the set")
	assert.Contains(t, set.Names, "requests")
}
