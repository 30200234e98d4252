package diagnostics

import (
	"strings"
	"testing"

	"github.com/hazel-lang/hazel/internal/token"
)

func TestErrorFormatIncludesCodeAndPosition(t *testing.T) {
	tok := token.Token{Type: token.IDENT, Lexeme: "T", Line: 4, Column: 12}
	e := NewNamingError(ErrN001, tok, "type parameter T shadows an earlier declaration of the same name")

	got := e.Error()
	for _, want := range []string{"[N001]", "line 4:12", "shadows"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, want it to contain %q", got, want)
		}
	}
}

func TestErrorFormatWithoutPosition(t *testing.T) {
	e := NewStructureError(ErrS001, token.Token{}, "interface I cannot use a trait")
	got := e.Error()
	if strings.Contains(got, "line") {
		t.Errorf("Error() = %q, should omit position when the token has none", got)
	}
	if !strings.HasPrefix(got, "[S001]") {
		t.Errorf("Error() = %q, want [S001] prefix", got)
	}
}

func TestWithRelatedChains(t *testing.T) {
	prev := token.Token{Line: 1, Column: 5}
	e := NewNamingError(ErrN001, token.Token{Line: 3, Column: 9}, "shadowed").
		WithRelated(prev, "previous declaration is here")

	if len(e.Related) != 1 {
		t.Fatalf("expected 1 related entry, got %d", len(e.Related))
	}
	if e.Related[0].Token != prev {
		t.Errorf("related token = %v, want %v", e.Related[0].Token, prev)
	}
}
