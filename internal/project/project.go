// Package project models the host build-tool project consumed by the
// launcher: compiled output directories, classpath scopes and the JVM
// locator. The launcher only reads from a Project; it never mutates one.
package project

import (
	"os"
	"path/filepath"

	"github.com/jvmtools/go-testng-launcher/internal/common"
)

// Project provides the read-only build layout queries the launcher needs to
// assemble a runtime classpath and locate the JVM.
type Project interface {
	// BuildDirectory returns the root build output directory
	BuildDirectory() string

	// BuildMainDirectory returns the compiled main classes directory
	BuildMainDirectory() string

	// BuildTestDirectory returns the compiled test classes directory
	BuildTestDirectory() string

	// TestClasspathJars returns classpath entries for the test scope
	TestClasspathJars() []string

	// CompileClasspathJars returns classpath entries for the compile scope
	CompileClasspathJars() []string

	// ProvidedClasspathJars returns classpath entries for the provided scope
	ProvidedClasspathJars() []string

	// JavaTool returns the path or name of the JVM executable
	JavaTool() string

	// JavaOptions returns extra options passed to the JVM before the main class
	JavaOptions() []string
}

// DefaultProject implements Project over the conventional bld directory
// layout: build/main and build/test for compiled classes, lib/<scope> for
// dependency jars.
type DefaultProject struct {
	baseDir     string
	javaTool    string
	javaOptions []string
	fs          common.FileSystem
}

// Option configures a DefaultProject.
type Option func(*DefaultProject)

// WithJavaTool overrides the JVM executable used to launch tests.
func WithJavaTool(tool string) Option {
	return func(p *DefaultProject) {
		if tool != "" {
			p.javaTool = tool
		}
	}
}

// WithJavaOptions sets extra JVM options emitted before the main class.
func WithJavaOptions(options ...string) Option {
	return func(p *DefaultProject) {
		p.javaOptions = append(p.javaOptions, options...)
	}
}

// WithFileSystem replaces the filesystem used for layout probing, for tests.
func WithFileSystem(fs common.FileSystem) Option {
	return func(p *DefaultProject) {
		p.fs = fs
	}
}

// New creates a DefaultProject rooted at baseDir.
func New(baseDir string, opts ...Option) *DefaultProject {
	p := &DefaultProject{
		baseDir:  baseDir,
		javaTool: locateJavaTool(),
		fs:       common.NewDefaultFileSystem(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BuildDirectory returns the root build output directory
func (p *DefaultProject) BuildDirectory() string {
	return filepath.Join(p.baseDir, "build")
}

// BuildMainDirectory returns the compiled main classes directory
func (p *DefaultProject) BuildMainDirectory() string {
	return filepath.Join(p.BuildDirectory(), "main")
}

// BuildTestDirectory returns the compiled test classes directory
func (p *DefaultProject) BuildTestDirectory() string {
	return filepath.Join(p.BuildDirectory(), "test")
}

// TestClasspathJars returns classpath entries for the test scope
func (p *DefaultProject) TestClasspathJars() []string {
	return p.scopeJars("test")
}

// CompileClasspathJars returns classpath entries for the compile scope
func (p *DefaultProject) CompileClasspathJars() []string {
	return p.scopeJars("compile")
}

// ProvidedClasspathJars returns classpath entries for the provided scope
func (p *DefaultProject) ProvidedClasspathJars() []string {
	return p.scopeJars("provided")
}

// JavaTool returns the path or name of the JVM executable
func (p *DefaultProject) JavaTool() string {
	return p.javaTool
}

// JavaOptions returns extra options passed to the JVM before the main class
func (p *DefaultProject) JavaOptions() []string {
	options := make([]string, len(p.javaOptions))
	copy(options, p.javaOptions)
	return options
}

// scopeJars returns a JVM wildcard entry for the scope's lib directory when
// it exists. The JVM expands dir/* to every jar in the directory, which
// avoids rescanning on each build.
func (p *DefaultProject) scopeJars(scope string) []string {
	dir := filepath.Join(p.baseDir, "lib", scope)
	isDir, err := p.fs.IsDir(dir)
	if err != nil || !isDir {
		return nil
	}
	return []string{filepath.Join(dir, "*")}
}

// locateJavaTool resolves the JVM executable: JAVA_HOME when set, otherwise
// "java" is left to PATH resolution at spawn time.
func locateJavaTool() string {
	if home := os.Getenv("JAVA_HOME"); home != "" {
		return filepath.Join(home, "bin", "java")
	}
	return "java"
}
