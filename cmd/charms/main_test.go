package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/testutils"
)

var addedIDPattern = regexp.MustCompile(`Added #(\d+)`)

type CLITestSuite struct {
	suite.Suite
	dbPath string
}

func (s *CLITestSuite) SetupTest() {
	for _, key := range []string{
		"CHARMS_BACKEND", "CHARMS_DB_PATH", "CHARMS_REDIS_ADDR",
		"CHARMS_SNAPSHOT_KEY", "CHARMS_CATALOG", "CHARMS_VERBOSE",
	} {
		prev, had := os.LookupEnv(key)
		s.Require().NoError(os.Unsetenv(key))
		if had {
			key := key
			s.T().Cleanup(func() { _ = os.Setenv(key, prev) })
		}
	}
	s.dbPath = filepath.Join(s.T().TempDir(), "charms.db")
}

// run executes the CLI against the suite's database
func (s *CLITestSuite) run(stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	full := append([]string{"--backend", "sqlite", "--db", s.dbPath}, args...)
	err := execute(context.Background(), full, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func (s *CLITestSuite) mustRun(args ...string) string {
	out, errOut, err := s.run("", args...)
	s.Require().NoError(err, "stderr: %s", errOut)
	return out
}

func (s *CLITestSuite) TestAddAndList() {
	out := s.mustRun("add", "--skill", "Attack:3", "--armor", "1-1", "--weapon", "1")
	s.Contains(out, "Added #")
	s.Contains(out, "Attack 3 [armor 1-1, weapon 1]")

	s.mustRun("add", "-s", "Guard:2", "-s", "Critical Eye:1", "-a", "3")

	out = s.mustRun("list")
	s.Contains(out, "Attack 3")
	s.Contains(out, "Guard 2, Critical Eye 1")
	s.NotContains(out, "Showing")

	out = s.mustRun("list", "--armor", "2")
	s.Contains(out, "Guard 2")
	s.NotContains(out, "Attack 3")
	s.Contains(out, "Showing 1 of 2 charms")

	out = s.mustRun("list", "--armor", "2", "--no-slots")
	s.Contains(out, "Attack 3")
}

func (s *CLITestSuite) TestListTextFormatNewestFirst() {
	s.mustRun("add", "--skill", "Attack:1")
	s.mustRun("add", "--skill", "Guard:1")

	out := s.mustRun("list", "--format", "text", "--newest-first")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 2)
	s.True(strings.HasPrefix(lines[0], "Guard,1"))
	s.True(strings.HasPrefix(lines[1], "Attack,1"))
}

func (s *CLITestSuite) TestListNoMatches() {
	s.mustRun("add", "--skill", "Attack:1")

	out := s.mustRun("list", "--skill", "Guard")
	s.Contains(out, "No charms match (1 in inventory)")
}

func (s *CLITestSuite) TestAddValidation() {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "no skills", args: []string{"add"}},
		{name: "unknown skill", args: []string{"add", "--skill", "Juggling:1"}},
		{name: "level too high", args: []string{"add", "--skill", "Guard:3"}},
		{name: "bad armor", args: []string{"add", "--skill", "Attack:1", "--armor", "4"}},
		{name: "bad weapon", args: []string{"add", "--skill", "Attack:1", "--weapon", "5"}},
		{name: "too many skills", args: []string{"add", "-s", "Attack:1", "-s", "Guard:1", "-s", "Super Crit:1", "-s", "Recovery Up:1"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, _, err := s.run("", tc.args...)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
			s.Equal(65, errors.GetCode(err).ExitCode())
		})
	}

	out := s.mustRun("list")
	s.Contains(out, "No charms match (0 in inventory)")
}

func (s *CLITestSuite) TestEdit() {
	id := s.addedID(s.mustRun("add", "--skill", "Attack:3", "--armor", "1-1", "--weapon", "1"))

	out := s.mustRun("edit", id, "--armor", "2-1")
	s.Contains(out, "Attack 3 [armor 2-1, weapon 1]")

	out = s.mustRun("edit", id, "--skill", "Guard:2", "--weapon", "0")
	s.Contains(out, "Guard 2 [armor 2-1, weapon -]")
}

func (s *CLITestSuite) TestEditUnknownCharm() {
	_, _, err := s.run("", "edit", "12345", "--armor", "1")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CLITestSuite) TestDelete() {
	id := s.addedID(s.mustRun("add", "--skill", "Attack:3"))

	out := s.mustRun("delete", id)
	s.Contains(out, "Deleted charm "+id)

	_, _, err := s.run("", "delete", id)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, _, err = s.run("", "delete", "abc")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestClear() {
	s.mustRun("add", "--skill", "Attack:3")
	s.mustRun("add", "--skill", "Guard:1")

	out, _, err := s.run("n\n", "clear")
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.Contains(out, "Delete all 2 charms? [y/N]")

	out, _, err = s.run("y\n", "clear")
	s.Require().NoError(err)
	s.Contains(out, "Removed 2 charms")

	out = s.mustRun("clear", "--yes")
	s.Contains(out, "Removed 0 charms")
}

func (s *CLITestSuite) TestImportExport() {
	input := "Attack,3,,,,,1,1,0,1,0,0\n" +
		"broken line\n" +
		"Guard,2,Critical Eye,1,,,2,1,0,0,0,0\n"

	out, errOut, err := s.run(input, "import")
	s.Require().NoError(err)
	s.Contains(out, "Imported 2 charms, skipped 1")
	s.Contains(errOut, "line 2")

	exported := s.mustRun("export")
	s.Equal("Attack,3,,0,,0,1,1,0,1,0,0\nGuard,2,Critical Eye,1,,0,2,1,0,0,0,0\n", exported)

	file := filepath.Join(s.T().TempDir(), "charms.txt")
	s.Require().NoError(os.WriteFile(file, []byte(exported), 0o600))

	out = s.mustRun("import", file)
	s.Contains(out, "Imported 2 charms, skipped 0")

	_, _, err = s.run("", "import", filepath.Join(s.T().TempDir(), "missing.txt"))
	s.True(errors.IsNotFound(err))
}

func (s *CLITestSuite) TestExportToClipboard() {
	var copied string
	oldClipboard := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	defer func() { clipboardWriteAll = oldClipboard }()

	s.mustRun("add", "--skill", "Attack:3")

	out, errOut, err := s.run("", "export", "--clipboard")
	s.Require().NoError(err)
	s.Empty(out)
	s.Contains(errOut, "Copied 1 charms")
	s.Equal("Attack,3,,0,,0,0,0,0,0,0,0", copied)
}

func (s *CLITestSuite) TestSkills() {
	out := s.mustRun("skills")
	s.Contains(out, "Attack")
	s.Contains(out, "Weakness Exploit")

	out = s.mustRun("skills", "guard")
	s.Contains(out, "Guard")
	s.Contains(out, "Offensive Guard")
	s.NotContains(out, "Attack")
}

func (s *CLITestSuite) TestCustomCatalog() {
	catalogPath := filepath.Join(s.T().TempDir(), "skills.yaml")
	s.Require().NoError(os.WriteFile(catalogPath, []byte("skills:\n  - name: Juggling\n    max_level: 2\n"), 0o600))

	out := s.mustRun("--catalog", catalogPath, "add", "--skill", "Juggling:2")
	s.Contains(out, "Juggling 2")
}

func (s *CLITestSuite) TestEnvironmentSelectsBackend() {
	s.T().Setenv("CHARMS_BACKEND", "memory")

	var out bytes.Buffer
	err := execute(context.Background(), []string{"add", "--skill", "Attack:1"}, strings.NewReader(""), &out, &bytes.Buffer{})
	s.Require().NoError(err)

	// memory backend keeps nothing between invocations
	out.Reset()
	err = execute(context.Background(), []string{"list"}, strings.NewReader(""), &out, &bytes.Buffer{})
	s.Require().NoError(err)
	s.Contains(out.String(), "No charms match (0 in inventory)")
}

func (s *CLITestSuite) TestRedisBackend() {
	_, mr := testutils.CreateTestRedisClient(s.T())

	var out bytes.Buffer
	args := []string{"--backend", "redis", "--redis-addr", mr.Addr(), "--key", "mine"}

	err := execute(context.Background(), append(args, "add", "--skill", "Attack:2"), strings.NewReader(""), &out, &bytes.Buffer{})
	s.Require().NoError(err)
	s.True(mr.Exists("charm_snapshot:mine"))

	out.Reset()
	err = execute(context.Background(), append(args, "list"), strings.NewReader(""), &out, &bytes.Buffer{})
	s.Require().NoError(err)
	s.Contains(out.String(), "Attack 2")
}

func (s *CLITestSuite) TestCheckAndRepair() {
	_, mr := testutils.CreateTestRedisClient(s.T())
	args := []string{"--backend", "redis", "--redis-addr", mr.Addr()}
	run := func(stdin string, extra ...string) (string, error) {
		var out bytes.Buffer
		err := execute(context.Background(), append(append([]string{}, args...), extra...), strings.NewReader(stdin), &out, &bytes.Buffer{})
		return out.String(), err
	}

	out, err := run("", "check")
	s.Require().NoError(err)
	s.Contains(out, `No snapshot stored under "charmsData"`)

	s.Require().NoError(mr.Set("charm_snapshot:charmsData", "{not json"))

	out, err = run("", "check")
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
	s.Equal(74, errors.GetCode(err).ExitCode())
	s.Contains(out, "is corrupt")

	_, err = run("no\n", "check", "--repair")
	s.True(errors.IsCanceled(err))

	out, err = run("yes\n", "check", "--repair")
	s.Require().NoError(err)
	s.Contains(out, `Replaced "charmsData" with an empty inventory`)

	out, err = run("", "check")
	s.Require().NoError(err)
	s.Contains(out, "holds 0 charms, 0 problems")
}

func (s *CLITestSuite) TestCheckReportsInvalidCharms() {
	_, mr := testutils.CreateTestRedisClient(s.T())
	payload := `[
		{"id": 1, "skills": [{"name": "Attack", "level": 3}], "slots": [1,0,0,0,0,0]},
		{"id": 1, "skills": [{"name": "Guard", "level": 1}], "slots": [0,0,0,0,0,0]},
		{"id": 2, "skills": [], "slots": [0,0,0,0,0,0]},
		{"id": 3, "skills": [{"name": "Juggling", "level": 1}], "slots": [0,0,0,0,0,0]}
	]`
	s.Require().NoError(mr.Set("charm_snapshot:charmsData", payload))

	var out bytes.Buffer
	err := execute(context.Background(), []string{"--backend", "redis", "--redis-addr", mr.Addr(), "check"}, strings.NewReader(""), &out, &bytes.Buffer{})
	s.Require().NoError(err)
	s.Contains(out.String(), "holds 4 charms, 3 problems")
	s.Contains(out.String(), "charm 1: duplicate id")
	s.Contains(out.String(), "charm 2: no named skill")
	s.Contains(out.String(), `unknown skill "Juggling"`)
}

func (s *CLITestSuite) TestInvalidConfiguration() {
	err := execute(context.Background(), []string{"--backend", "postgres", "list"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(78, errors.GetCode(err).ExitCode())
	s.Contains(describeError(err), "invalid configuration: ")
	s.Contains(describeError(err), "backend")

	s.T().Setenv("CHARMS_VERBOSE", "loud")
	err = execute(context.Background(), []string{"skills"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *CLITestSuite) TestDescribeError() {
	s.Equal("charms not found: [5]", describeError(errors.NotFoundf("charms not found: %v", []int64{5})))
	s.Equal("failed to persist charms: disk full",
		describeError(errors.Persistence(stderrors.New("disk full"), "failed to persist charms")))
	s.Equal("invalid configuration: failed to parse environment: boom",
		describeError(errors.WrapWithCode(
			errors.WrapWithCode(stderrors.New("boom"), errors.CodeInvalidArgument, "failed to parse environment"),
			errors.CodeFailedPrecondition, "invalid configuration")))
}

// addedID pulls the charm id out of "Added #<id> ..."
func (s *CLITestSuite) addedID(out string) string {
	match := addedIDPattern.FindStringSubmatch(out)
	s.Require().Len(match, 2, "no id in %q", out)
	return match[1]
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
