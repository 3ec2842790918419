// pkg/manifest/candidate_test.go
package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmodx/gmodbuild/pkg/cargo"
)

// memberDir creates a real package directory so path resolution in the picker
// behaves as it does against cargo metadata output.
func memberDir(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func cdylibPackage(dir, name string) cargo.Package {
	return cargo.Package{
		Name:         name,
		ManifestPath: filepath.Join(dir, "Cargo.toml"),
		Targets: []cargo.Target{
			{Name: name, Kind: []string{"cdylib"}},
		},
	}
}

func TestPickCdylib_NoCandidates(t *testing.T) {
	root := t.TempDir()
	meta := &cargo.Metadata{
		Packages: []cargo.Package{
			{
				Name:         "helper",
				ManifestPath: filepath.Join(memberDir(t, root, "helper"), "Cargo.toml"),
				Targets:      []cargo.Target{{Name: "helper", Kind: []string{"lib"}}},
			},
		},
	}

	_, err := PickCdylib(meta, root)
	assert.ErrorIs(t, err, ErrNoCdylib)
}

func TestPickCdylib_SingleCandidateWinsAnywhere(t *testing.T) {
	root := t.TempDir()
	modDir := memberDir(t, root, "mymod")
	elsewhere := memberDir(t, root, "unrelated")

	meta := &cargo.Metadata{
		Packages: []cargo.Package{
			cdylibPackage(modDir, "my-mod"),
			{
				Name:         "helper",
				ManifestPath: filepath.Join(elsewhere, "Cargo.toml"),
				Targets:      []cargo.Target{{Name: "helper", Kind: []string{"lib"}}},
			},
		},
	}

	got, err := PickCdylib(meta, elsewhere)
	require.NoError(t, err)
	assert.Equal(t, "my_mod", got.Lib)
	assert.Equal(t, resolvePath(modDir), got.Dir)
}

func TestPickCdylib_WorkdirDisambiguates(t *testing.T) {
	root := t.TempDir()
	aDir := memberDir(t, root, "mod-a")
	bDir := memberDir(t, root, "mod-b")

	meta := &cargo.Metadata{
		Packages: []cargo.Package{
			cdylibPackage(aDir, "mod-a"),
			cdylibPackage(bDir, "mod-b"),
		},
	}

	got, err := PickCdylib(meta, bDir)
	require.NoError(t, err)
	assert.Equal(t, "mod_b", got.Lib)
}

func TestPickCdylib_AmbiguousListsAllCandidates(t *testing.T) {
	root := t.TempDir()
	aDir := memberDir(t, root, "mod-a")
	bDir := memberDir(t, root, "mod-b")

	meta := &cargo.Metadata{
		Packages: []cargo.Package{
			cdylibPackage(aDir, "mod-a"),
			cdylibPackage(bDir, "mod-b"),
		},
	}

	_, err := PickCdylib(meta, root)
	require.Error(t, err)

	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 2)
	assert.Contains(t, err.Error(), resolvePath(aDir))
	assert.Contains(t, err.Error(), resolvePath(bDir))
	assert.Contains(t, err.Error(), "disambiguate")
}

func TestCandidates_FirstCdylibTargetPerPackage(t *testing.T) {
	root := t.TempDir()
	dir := memberDir(t, root, "multi")

	meta := &cargo.Metadata{
		Packages: []cargo.Package{
			{
				Name:         "multi",
				ManifestPath: filepath.Join(dir, "Cargo.toml"),
				Targets: []cargo.Target{
					{Name: "first-lib", Kind: []string{"lib", "cdylib"}},
					{Name: "second-lib", Kind: []string{"cdylib"}},
				},
			},
		},
	}

	candidates := Candidates(meta)
	require.Len(t, candidates, 1)
	assert.Equal(t, "first_lib", candidates[0].Lib)
}

func TestCandidates_FallsBackToPackageName(t *testing.T) {
	root := t.TempDir()
	dir := memberDir(t, root, "anon")

	meta := &cargo.Metadata{
		Packages: []cargo.Package{
			{
				Name:         "anon-pkg",
				ManifestPath: filepath.Join(dir, "Cargo.toml"),
				Targets:      []cargo.Target{{Kind: []string{"cdylib"}}},
			},
		},
	}

	candidates := Candidates(meta)
	require.Len(t, candidates, 1)
	assert.Equal(t, "anon_pkg", candidates[0].Lib)
}
