package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseJavaCU(t *testing.T, src string) (*EventRecorder, *SourceParser) {
	t.Helper()
	rec := &EventRecorder{}
	p := NewFromString(src, Java, rec)
	p.ParseCU()
	return rec, p
}

func countEvents(rec *EventRecorder, name string) int {
	n := 0
	for _, e := range rec.Events {
		if e.Name == name {
			n++
		}
	}
	return n
}

func filterNames(rec *EventRecorder, names ...string) []string {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var out []string
	for _, e := range rec.Events {
		if keep[e.Name] {
			out = append(out, e.Name)
		}
	}
	return out
}

func findEvent(rec *EventRecorder, name string) *Event {
	for i := range rec.Events {
		if rec.Events[i].Name == name {
			return &rec.Events[i]
		}
	}
	return nil
}

// eventPairs maps each Begin-style notification to the notification
// that closes it. BeginElement is absent: imports and package
// statements close through their semicolon notifications instead.
var eventPairs = map[string]string{
	"BeginTypeBody":          "EndTypeBody",
	"BeginTypeDefExtends":    "EndTypeDefExtends",
	"BeginTypeDefImplements": "EndTypeDefImplements",
	"BeginTypeDefPermits":    "EndTypeDefPermits",
	"BeginRecordParameters":  "EndRecordParameters",
	"BeginMethodBody":        "EndMethodBody",
	"BeginInitBlock":         "EndInitBlock",
	"BeginAnonClassBody":     "EndAnonClassBody",
	"BeginThrows":            "EndThrows",
	"BeginStmtBlockBody":     "EndStmtBlockBody",
	"BeginExpression":        "EndExpression",
	"BeginArgumentList":      "EndArgumentList",
	"BeginArrayInitList":     "EndArrayInitList",
	"BeginIfStmt":            "EndIfStmt",
	"BeginIfCondBlock":       "EndIfCondBlock",
	"BeginSwitchStmt":        "EndSwitchStmt",
	"BeginSwitchBlock":       "EndSwitchBlock",
	"BeginSwitchCase":        "EndSwitchCase",
	"BeginWhileLoop":         "EndWhileLoop",
	"BeginWhileLoopBody":     "EndWhileLoopBody",
	"BeginDoWhile":           "EndDoWhile",
	"BeginForLoop":           "EndForLoop",
	"BeginForLoopBody":       "EndForLoopBody",
	"BeginTryCatchStmt":      "EndTryCatchStmt",
	"BeginTryBlock":          "EndTryBlock",
	"BeginSynchronizedBlock": "EndSynchronizedBlock",
	"BeginLambdaBody":        "EndLambdaBody",
	"GotMethodTypeParamsBegin": "EndMethodTypeParams",
}

func checkBalanced(t *testing.T, rec *EventRecorder) {
	t.Helper()
	for begin, end := range eventPairs {
		nb, ne := countEvents(rec, begin), countEvents(rec, end)
		if nb != ne {
			t.Errorf("%s fired %d times but %s fired %d times", begin, nb, end, ne)
		}
	}
}

// Inputs for the whole-parse invariants, valid and malformed alike.
var parseCorpus = []struct {
	name string
	src  string
}{
	{"empty", ""},
	{"hello world", `
package com.example;

import java.util.List;

public class Hello {
    public static void main(String[] args) {
        System.out.println("Hello, world");
    }
}`},
	{"interface with generics", `
interface Box<T extends Comparable<T> & java.io.Serializable> {
    T get();
    void put(T value) throws IllegalStateException;
}`},
	{"enum with bodies", `
enum Op {
    ADD(1) { int apply(int a, int b) { return a + b; } },
    SUB(2) { int apply(int a, int b) { return a - b; } };
    Op(int code) {}
}`},
	{"record and sealed", `
sealed interface Shape permits Circle, Square {}
record Circle(double radius) implements Shape {}
record Square(double side) implements Shape {}`},
	{"control flow", `
class C {
    void m(int[] xs) {
        for (int i = 0; i < xs.length; i++) { f(xs[i]); }
        for (int x : xs) { f(x); }
        while (ready()) { step(); }
        do { step(); } while (ready());
        if (a) b(); else if (c) d(); else e();
        try (var r = open()) { use(r); } catch (A | B e) { log(e); } finally { done(); }
        synchronized (lock) { touch(); }
        label: return;
    }
}`},
	{"switch forms", `
class C {
    int m(Object o) {
        switch (kind) {
            case 1: f(); break;
            default: g();
        }
        return switch (o) {
            case Integer i -> i;
            case null, default -> 0;
        };
    }
}`},
	{"lambdas and refs", `
class C {
    Runnable r = () -> { go(); };
    F f = (int a, int b) -> a + b;
    G g = x -> x * 2;
    H h = String::valueOf;
}`},
	{"annotation type", `
@interface Marker {
    String value() default "";
}`},
	{"missing semi", "class C { int x = 1 }"},
	{"missing initializer", "class C { int x = ; }"},
	{"unclosed paren", "class C { void f( { } }"},
	{"unclosed if", "class C { void m() { if (x } }"},
	{"unclosed body", "class C { void m() { while (true) {"},
	{"bare keyword", "class"},
	{"garbage", "%$ ) class ; ]"},
	{"stmts at top level", "int x = 1; f();"},
}

// Every parse drains the stream and fires FinishedCU exactly once,
// malformed input included.
func TestParseCUTotalConsumption(t *testing.T) {
	for _, tt := range parseCorpus {
		t.Run(tt.name, func(t *testing.T) {
			rec, p := parseJavaCU(t, tt.src)
			if n := countEvents(rec, "FinishedCU"); n != 1 {
				t.Errorf("FinishedCU fired %d times, want 1", n)
			}
			if tok := p.stream.LA(1); tok.Kind != TokenEOF {
				t.Errorf("stream not drained: next token is %v %q", tok.Kind, tok.Literal)
			}
		})
	}
}

func TestParseCUBalancedEvents(t *testing.T) {
	for _, tt := range parseCorpus {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := parseJavaCU(t, tt.src)
			checkBalanced(t, rec)
		})
	}
}

// A<B> c; declares a variable; a<b>c in expression position is two
// comparisons.
func TestGenericDeclarationVsComparison(t *testing.T) {
	rec, _ := parseJavaCU(t, "class C { void m() { A<B> c; } }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "GotVariableDecl"); n != 1 {
		t.Errorf("GotVariableDecl fired %d times, want 1", n)
	}
	// The method return type is also a type spec; look for the one
	// spanning A<B>.
	found := false
	for _, e := range rec.Events {
		if e.Name == "GotTypeSpec" && strings.Contains(e.Args[0], "(A)") && strings.Contains(e.Args[0], "(B)") {
			found = true
		}
	}
	if !found {
		t.Error("no GotTypeSpec event spanning A<B>")
	}

	rec, _ = parseJavaCU(t, "class C { void m() { r = a<b>c; } }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "GotVariableDecl"); n != 0 {
		t.Errorf("GotVariableDecl fired %d times, want 0", n)
	}
	// =, < and > are all reported as binary operators.
	if n := countEvents(rec, "GotBinaryOperator"); n != 3 {
		t.Errorf("GotBinaryOperator fired %d times, want 3", n)
	}
}

// The compound '>>' closes two generic nesting levels at once.
func TestNestedGenericCompoundClose(t *testing.T) {
	rec, _ := parseJavaCU(t, "class C { void m() { Map<String, List<Integer>> m; } }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	ev := findEvent(rec, "GotVariableDecl")
	if ev == nil {
		t.Fatal("no GotVariableDecl event")
	}
	if !strings.Contains(ev.Args[1], "(m)") {
		t.Errorf("declared variable = %v, want m", ev.Args[1])
	}
	found := false
	for _, e := range rec.Events {
		if e.Name == "GotTypeSpec" && strings.Contains(e.Args[0], "(>>)") {
			found = true
		}
	}
	if !found {
		t.Error("no GotTypeSpec event containing the compound '>>'")
	}
}

func TestLambdaVsCast(t *testing.T) {
	rec := &EventRecorder{}
	p := NewFromString("(x) -> x + 1", Java, rec)
	p.ParseExpression()
	if len(rec.Errors()) != 0 {
		t.Fatalf("lambda: unexpected errors: %v", rec.Errors())
	}
	if ev := findEvent(rec, "GotLambdaFormalName"); ev == nil {
		t.Error("lambda: no GotLambdaFormalName event")
	} else if !strings.Contains(ev.Args[0], "(x)") {
		t.Errorf("lambda: formal name = %v, want x", ev.Args[0])
	}
	if findEvent(rec, "GotTypeCast") != nil {
		t.Error("lambda: spurious GotTypeCast event")
	}

	rec = &EventRecorder{}
	p = NewFromString("(Foo) x", Java, rec)
	p.ParseExpression()
	if len(rec.Errors()) != 0 {
		t.Fatalf("cast: unexpected errors: %v", rec.Errors())
	}
	if ev := findEvent(rec, "GotTypeCast"); ev == nil {
		t.Error("cast: no GotTypeCast event")
	} else if !strings.Contains(ev.Args[0], "(Foo)") {
		t.Errorf("cast: type = %v, want Foo", ev.Args[0])
	}
	if findEvent(rec, "GotLambdaFormalName") != nil {
		t.Error("cast: spurious GotLambdaFormalName event")
	}
}

// A record pattern in a case label binds its components as variables.
func TestRecordPatternBindsVariables(t *testing.T) {
	rec, _ := parseJavaCU(t, `
class C {
    void m(Object o) {
        switch (o) {
            case Point(int x, int y) -> f(x, y);
            default -> g();
        }
    }
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}

	var bound []string
	for _, e := range rec.Events {
		if e.Name == "GotVariableDecl" {
			bound = append(bound, e.Args[1])
		}
	}
	if len(bound) != 2 {
		t.Fatalf("bound %d variables (%v), want 2", len(bound), bound)
	}
	if !strings.Contains(bound[0], "(x)") || !strings.Contains(bound[1], "(y)") {
		t.Errorf("bound = %v, want x then y", bound)
	}

	if ev := findEvent(rec, "GotSwitchCaseType"); ev == nil {
		t.Error("no GotSwitchCaseType event")
	} else if ev.Args[1] != "true" {
		t.Errorf("GotSwitchCaseType arrow = %v, want true", ev.Args[1])
	}
}

// An unclosed parameter list produces a single diagnostic, the method
// declaration still ends, and the parse resynchronizes.
func TestMalformedMethodRecovery(t *testing.T) {
	rec, p := parseJavaCU(t, "class C { void f( { } }")

	if n := len(rec.Errors()); n != 1 {
		t.Errorf("got %d errors (%v), want 1", n, rec.Errors())
	}
	ev := findEvent(rec, "EndMethodDecl")
	if ev == nil {
		t.Fatal("no EndMethodDecl event")
	}
	if ev.Args[1] != "false" {
		t.Errorf("EndMethodDecl included = %v, want false", ev.Args[1])
	}

	// Resynchronized: the type definition still closes at its '}'.
	td := findEvent(rec, "GotTypeDefEnd")
	if td == nil {
		t.Fatal("no GotTypeDefEnd event")
	}
	if td.Args[1] != "true" {
		t.Errorf("GotTypeDefEnd included = %v, want true", td.Args[1])
	}
	if tok := p.stream.LA(1); tok.Kind != TokenEOF {
		t.Errorf("stream not drained: next token is %v", tok.Kind)
	}
}

func TestImportStatements(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		events []string
		errors int
	}{
		{
			name:   "single import",
			src:    "import java.util.List;",
			events: []string{"GotImport", "GotImportStmtSemi"},
		},
		{
			name:   "static import",
			src:    "import static java.util.Arrays.asList;",
			events: []string{"GotImport", "GotImportStmtSemi"},
		},
		{
			name:   "wildcard import",
			src:    "import java.util.*;",
			events: []string{"GotWildcardImport", "GotImportStmtSemi"},
		},
		{
			name:   "trailing dot",
			src:    "import java.util.;",
			errors: 1,
		},
		{
			name:   "missing semicolon",
			src:    "import java.util.List",
			errors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := parseJavaCU(t, tt.src)
			got := filterNames(rec, "GotImport", "GotWildcardImport", "GotImportStmtSemi")
			if diff := cmp.Diff(tt.events, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			if len(rec.Errors()) != tt.errors {
				t.Errorf("got %d errors (%v), want %d", len(rec.Errors()), rec.Errors(), tt.errors)
			}
		})
	}
}

func TestPackageStatement(t *testing.T) {
	rec, _ := parseJavaCU(t, "package com.example.app;")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	want := []string{"BeginPackageStatement", "GotPackage", "GotPackageSemi"}
	got := filterNames(rec, want...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	// A second package statement is diagnosed but still consumed.
	rec, _ = parseJavaCU(t, "package a; package b;")
	if len(rec.Errors()) != 1 {
		t.Errorf("got %d errors, want 1", len(rec.Errors()))
	}
}

func TestEnumConstants(t *testing.T) {
	rec, _ := parseJavaCU(t, `
enum Planet {
    MERCURY(3.3e23), VENUS(4.87e24);
    Planet(double mass) {}
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "BeginArgumentList"); n != 2 {
		t.Errorf("BeginArgumentList fired %d times, want 2", n)
	}
	if n := countEvents(rec, "GotConstructorDecl"); n != 1 {
		t.Errorf("GotConstructorDecl fired %d times, want 1", n)
	}

	// Empty bodies and trailing commas are valid.
	for _, src := range []string{"enum E {}", "enum E { A, }"} {
		rec, _ := parseJavaCU(t, src)
		if len(rec.Errors()) != 0 {
			t.Errorf("%q: unexpected errors: %v", src, rec.Errors())
		}
	}
}

func TestTryWithResourcesAndMultiCatch(t *testing.T) {
	rec, _ := parseJavaCU(t, `
class C {
    void m() {
        try (var a = open(); var b = open()) {
            use(a, b);
        } catch (IOException | RuntimeException e) {
            log(e);
        } finally {
            done();
        }
    }
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	ev := findEvent(rec, "BeginTryCatchStmt")
	if ev == nil {
		t.Fatal("no BeginTryCatchStmt event")
	}
	if ev.Args[1] != "true" {
		t.Errorf("hasResources = %v, want true", ev.Args[1])
	}
	if findEvent(rec, "GotMultiCatch") == nil {
		t.Error("no GotMultiCatch event")
	}
	if n := countEvents(rec, "GotCatchFinally"); n != 2 {
		t.Errorf("GotCatchFinally fired %d times, want 2 (catch and finally)", n)
	}
}

func TestInstanceofPatterns(t *testing.T) {
	rec, _ := parseJavaCU(t, "class C { void m() { if (o instanceof String s) { use(s); } } }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if findEvent(rec, "GotInstanceOfOperator") == nil {
		t.Error("no GotInstanceOfOperator event")
	}
	ev := findEvent(rec, "GotInstanceOfVar")
	if ev == nil {
		t.Fatal("no GotInstanceOfVar event")
	}
	if !strings.Contains(ev.Args[0], "(s)") {
		t.Errorf("instanceof binding = %v, want s", ev.Args[0])
	}
}

// Method documentation comments ride along on the declaration
// notification.
func TestMethodComment(t *testing.T) {
	rec, _ := parseJavaCU(t, `
class C {
    /** Does the thing. */
    void m() {}
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "GotComment"); n != 1 {
		t.Errorf("GotComment fired %d times, want 1", n)
	}
	if findEvent(rec, "GotMethodDeclaration") == nil {
		t.Error("no GotMethodDeclaration event")
	}
}
