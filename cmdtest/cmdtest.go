// Package cmdtest runs a CLI entry point in process against cases described
// in YAML files and compares stdout, stderr and the exit code.
//
// A file holds either a list of cases or a mapping with a "tests" key:
//
//	tests:
//	  - name: add
//	    cmd: rangetype
//	    args: ["eval", "--range", "[0,10]", "--", "3", "+", "4"]
//	    expect:
//	      stdout: "7\n"
//
// With update enabled, mismatching expectations are written back into the
// file, keeping its layout and comments.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

type Expectation struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Expect      Expectation       `yaml:"expect"`
}

// Group is the content of one YAML file.
type Group struct {
	Name  string
	Cases []Case `yaml:"tests"`

	path  string
	root  *yaml.Node
	nodes []*yaml.Node
}

type Suite struct {
	groups   []*Group
	commands map[string]func() int
	// os.Args, os.Stdout and os.Stderr are process globals.
	mu sync.Mutex
}

// Read loads every .yaml/.yml file below dir.
func Read(dir string) (*Suite, error) {
	suite := &Suite{commands: make(map[string]func() int)}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		group, err := readGroup(path)
		if err != nil {
			return err
		}
		suite.groups = append(suite.groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

func readGroup(path string) (*Group, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty yaml", path)
	}

	testsNode, err := locateTestsNode(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	group := &Group{Name: filepath.Base(path), path: path, root: &root}
	if err := testsNode.Decode(&group.Cases); err != nil {
		return nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	group.nodes = testsNode.Content
	return group, nil
}

// Register binds the name used in the "cmd" field to an entry point that
// returns the exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case as a subtest. With update set, mismatches are
// written back to the YAML files instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		t.Run(group.Name, func(t *testing.T) {
			changed := false
			for i := range group.Cases {
				name := group.Cases[i].Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					if s.runCase(t, group, i, update) {
						changed = true
					}
				})
			}
			if changed {
				if err := group.persist(); err != nil {
					t.Fatalf("persist %s: %v", group.path, err)
				}
				t.Logf("cmdtest: updated %s", group.path)
			}
		})
	}
}

type result struct {
	stdout   string
	stderr   string
	exitCode int
}

func (s *Suite) runCase(t *testing.T, group *Group, idx int, update bool) bool {
	c := &group.Cases[idx]
	run, ok := s.commands[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}
	for k, v := range c.Env {
		t.Setenv(k, v)
	}

	oldArgs := os.Args
	os.Args = append([]string{c.Cmd}, c.Args...)
	defer func() { os.Args = oldArgs }()

	got, err := capture(run)
	if err != nil {
		t.Fatalf("capture output: %v", err)
	}
	return group.apply(t, idx, got, update)
}

// capture runs fn with os.Stdout and os.Stderr redirected to pipes. A panic
// is reported as exit code -1 with the panic value on stderr.
func capture(fn func() int) (result, error) {
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return result{}, err
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return result{}, err
	}
	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = wOut, wErr

	var res result
	var wg sync.WaitGroup
	wg.Add(2)
	drain := func(r io.Reader, dst *string) {
		defer wg.Done()
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		*dst = buf.String()
	}
	go drain(rOut, &res.stdout)
	go drain(rErr, &res.stderr)

	var panicked any
	func() {
		defer func() { panicked = recover() }()
		res.exitCode = fn()
	}()

	os.Stdout, os.Stderr = oldStdout, oldStderr
	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()

	if panicked != nil {
		res.exitCode = -1
		res.stderr += fmt.Sprintf("panic: %v\n", panicked)
	}
	return res, nil
}

// apply compares got with the expectation of case idx and reports whether the
// YAML tree was changed.
func (g *Group) apply(t *testing.T, idx int, got result, update bool) bool {
	c := &g.Cases[idx]
	expectNode := ensureMapValue(g.nodes[idx], "expect")
	changed := false

	if got.exitCode != c.Expect.ExitCode {
		if update {
			c.Expect.ExitCode = got.exitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), got.exitCode)
			changed = true
		} else {
			t.Errorf("exit code mismatch:\nExpected: %d\nActual:   %d", c.Expect.ExitCode, got.exitCode)
		}
	}
	if got.stdout != c.Expect.Stdout {
		if update {
			c.Expect.Stdout = got.stdout
			setStringScalar(ensureMapValue(expectNode, "stdout"), got.stdout)
			changed = true
		} else {
			t.Errorf("stdout mismatch:\nExpected:\n%s\nActual:\n%s", c.Expect.Stdout, got.stdout)
		}
	}
	if got.stderr != c.Expect.Stderr {
		if update {
			c.Expect.Stderr = got.stderr
			setStringScalar(ensureMapValue(expectNode, "stderr"), got.stderr)
			changed = true
		} else {
			t.Errorf("stderr mismatch:\nExpected:\n%s\nActual:\n%s", c.Expect.Stderr, got.stderr)
		}
	}
	return changed
}

func (g *Group) persist() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(g.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(g.path, buf.Bytes(), 0o644)
}

func locateTestsNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.MappingNode:
		if val := findMapValue(doc, "tests"); val != nil {
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("tests must be a sequence")
			}
			return val, nil
		}
		return nil, fmt.Errorf("missing 'tests' key")
	case yaml.SequenceNode:
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Tag = "!!map"
		mapNode.Value = ""
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ""}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	node.Content = nil
	// A lone line break would be written as an empty literal block.
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	} else {
		node.Style = 0
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Content = nil
	node.Value = strconv.Itoa(val)
}
