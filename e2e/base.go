package e2e

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Step prints a colorized header so scenario phases stand out in logs
func (s *BaseSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// FixtureDir writes a transcript input directory from the given file map.
func (s *BaseSuite) FixtureDir(t *testing.T, files map[string][]byte) string {
	dir := s.workDir(t, "rsmf-e2e-in-*")
	for name, data := range files {
		s.Require().NoError(os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	return dir
}

// OutputDir returns a directory for generated containers.
func (s *BaseSuite) OutputDir(t *testing.T) string {
	return s.workDir(t, "rsmf-e2e-out-*")
}

func (s *BaseSuite) workDir(t *testing.T, pattern string) string {
	if s.Config.KeepArtifacts {
		dir, err := os.MkdirTemp("", pattern)
		s.Require().NoError(err)
		t.Logf("Keeping artifacts in %s", dir)
		return dir
	}
	return t.TempDir()
}
