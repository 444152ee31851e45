package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMetadataFor(t *testing.T) {
	if got := MetadataFor(CodeNotFound).HTTPStatus; got != http.StatusNotFound {
		t.Fatalf("expected 404 for NOT_FOUND, got %d", got)
	}
	if got := MetadataFor(Code("UNKNOWN")).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("expected unknown codes to map to 500, got %d", got)
	}
	if !MetadataFor(CodeDependency).Retryable {
		t.Fatal("expected dependency errors to be retryable")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "db: insert product")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped error to unwrap to its cause")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Error() != "DEPENDENCY_ERROR: db: insert product" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAsFindsNestedTypedError(t *testing.T) {
	inner := New(CodeNotFound, "inventory record missing")
	outer := fmt.Errorf("coordinator: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error to be found in chain")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestDumpExtractsPGFields(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "products_style_code_key",
		TableName:      "products",
		Detail:         "Key (style_code)=(NKE-RN-0001) already exists.",
	}
	err := Wrap(CodeConflict, pgErr, "db: insert product")

	d := Dump(err)
	if d.PGCode != "23505" {
		t.Fatalf("unexpected pg code %q", d.PGCode)
	}
	if d.PGConstraint != "products_style_code_key" {
		t.Fatalf("unexpected pg constraint %q", d.PGConstraint)
	}
	if d.Code != CodeConflict {
		t.Fatalf("unexpected code %q", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", d.Chain)
	}
}
