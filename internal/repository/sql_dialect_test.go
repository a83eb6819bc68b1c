package repository

import (
	"strings"
	"testing"
)

func TestBuildContainsConditionSQLite(t *testing.T) {
	condition, argCount := buildContainsCondition(nil, []string{"name", " ", "description"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if !strings.Contains(condition, `name LIKE ? ESCAPE '\'`) {
		t.Fatalf("condition should contain name LIKE, got %s", condition)
	}
	if !strings.Contains(condition, " OR description LIKE ?") {
		t.Fatalf("condition should OR description, got %s", condition)
	}
}

func TestBuildContainsConditionPostgres(t *testing.T) {
	condition, argCount := buildContainsConditionByDialect("postgres", []string{"name"})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if !strings.HasPrefix(condition, "name ILIKE ?") {
		t.Fatalf("postgres should use ILIKE, got %s", condition)
	}
}

func TestContainsPatternEscapesWildcards(t *testing.T) {
	got := containsPattern(`50%_off\`)
	want := `%50\%\_off\\%`
	if got != want {
		t.Fatalf("pattern mismatch, want %s got %s", want, got)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
