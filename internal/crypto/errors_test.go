package crypto_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sentinel errors are part of the API callers match with errors.Is, so each
// one carries a doc comment.
func TestSentinelErrorsDocumented(t *testing.T) {
	dirs := []string{".", filepath.Join("..", "format", "der")}
	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)

		fset := token.NewFileSet()
		for _, path := range files {
			if strings.HasSuffix(path, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
			require.NoError(t, err)

			for _, decl := range f.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.VAR {
					continue
				}
				for _, s := range gen.Specs {
					vs := s.(*ast.ValueSpec)
					for _, name := range vs.Names {
						if !strings.HasPrefix(name.Name, "Err") {
							continue
						}
						documented := vs.Doc != nil || gen.Doc != nil
						assert.True(t, documented, "%s: %s has no doc comment", path, name.Name)
					}
				}
			}
		}
	}
}
