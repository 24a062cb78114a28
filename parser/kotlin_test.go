package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseKotlinCU(t *testing.T, src string) (*EventRecorder, *SourceParser) {
	t.Helper()
	rec := &EventRecorder{}
	p := NewFromString(src, Kotlin, rec)
	p.ParseCU()
	return rec, p
}

var kotlinParseCorpus = []struct {
	name string
	src  string
}{
	{"empty", ""},
	{"full file", `
package com.example

import java.util.Locale;

class Greeter(val name: String) : Base(), Greetable {
    fun greet(who: String): String {
        return hello(who);
    }
}`},
	{"braceless classes", "class Foo\nclass Bar"},
	{"enum class", "enum class Color { RED, GREEN, BLUE }"},
	{"companion object", `
class C {
    companion object Factory {
        val zero = 0
    }
}`},
	{"object declaration", `
object Registry : Base {
    fun lookup(name: String): Int { return 0; }
}`},
	{"top level members", "fun main(count: Int) { val x = 1; }\nval version = 2"},
	{"init block", "class C { init { count = 1; } }"},
	{"nested declarations", `
class Outer {
    fun run() {
        val local = make()
        fun helper(n: Int) { use(n); }
        class Runner { }
    }
}`},
	{"bare keyword", "class"},
	{"unclosed body", "class C {"},
	{"stray companion", "companion"},
	{"bare fun", "fun"},
	{"garbage in body", "class C { %% }"},
	{"garbage at top level", ") %% ]"},
}

func TestKotlinParseCUTotalConsumption(t *testing.T) {
	for _, tt := range kotlinParseCorpus {
		t.Run(tt.name, func(t *testing.T) {
			rec, p := parseKotlinCU(t, tt.src)
			if n := countEvents(rec, "FinishedCU"); n != 1 {
				t.Errorf("FinishedCU fired %d times, want 1", n)
			}
			if tok := p.stream.LA(1); tok.Kind != TokenEOF {
				t.Errorf("stream not drained: next token is %v %q", tok.Kind, tok.Literal)
			}
		})
	}
}

func TestKotlinParseCUBalancedEvents(t *testing.T) {
	for _, tt := range kotlinParseCorpus {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := parseKotlinCU(t, tt.src)
			checkBalanced(t, rec)
		})
	}
}

// Class bodies are optional; a following declaration keyword or the
// end of input closes the definition.
func TestKotlinBracelessClass(t *testing.T) {
	rec, _ := parseKotlinCU(t, "class Foo\nclass Bar")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "GotTypeDef"); n != 2 {
		t.Errorf("GotTypeDef fired %d times, want 2", n)
	}

	var names []string
	var ends []*Event
	for i := range rec.Events {
		switch rec.Events[i].Name {
		case "GotTypeDefName":
			names = append(names, rec.Events[i].Args[0])
		case "GotTypeDefEnd":
			ends = append(ends, &rec.Events[i])
		}
	}
	if len(names) != 2 || !strings.Contains(names[0], "(Foo)") || !strings.Contains(names[1], "(Bar)") {
		t.Errorf("type names = %v, want Foo then Bar", names)
	}
	if len(ends) != 2 {
		t.Fatalf("GotTypeDefEnd fired %d times, want 2", len(ends))
	}
	// Foo ends at the following 'class'; Bar runs into end of input.
	if ends[0].Args[1] != "true" {
		t.Errorf("first GotTypeDefEnd included = %v, want true", ends[0].Args[1])
	}
	if ends[1].Args[1] != "false" {
		t.Errorf("second GotTypeDefEnd included = %v, want false", ends[1].Args[1])
	}
}

func TestKotlinPrimaryConstructorAndInheritance(t *testing.T) {
	rec, _ := parseKotlinCU(t, "class Greeter(val name: String) : Base(), Greetable {}")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "BeginTypeDefExtends"); n != 2 {
		t.Errorf("BeginTypeDefExtends fired %d times, want 2", n)
	}

	var supers []string
	for _, e := range rec.Events {
		if e.Name == "GotTypeSpec" {
			supers = append(supers, e.Args[0])
		}
	}
	if len(supers) != 2 || !strings.Contains(supers[0], "(Base)") || !strings.Contains(supers[1], "(Greetable)") {
		t.Errorf("supertypes = %v, want Base then Greetable", supers)
	}

	ev := findEvent(rec, "GotTypeDefEnd")
	if ev == nil {
		t.Fatal("no GotTypeDefEnd event")
	}
	if ev.Args[1] != "true" {
		t.Errorf("GotTypeDefEnd included = %v, want true", ev.Args[1])
	}
}

func TestKotlinEnumClass(t *testing.T) {
	rec, _ := parseKotlinCU(t, "enum class Color { RED, GREEN, BLUE }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	td := findEvent(rec, "GotTypeDef")
	if td == nil {
		t.Fatal("no GotTypeDef event")
	}
	if td.Args[1] != "2" {
		t.Errorf("type definition kind = %v, want enum (2)", td.Args[1])
	}

	var constants []string
	for _, e := range rec.Events {
		if e.Name == "GotField" {
			constants = append(constants, e.Args[1])
		}
	}
	if len(constants) != 3 {
		t.Fatalf("GotField fired %d times (%v), want 3", len(constants), constants)
	}
	for i, want := range []string{"(RED)", "(GREEN)", "(BLUE)"} {
		if !strings.Contains(constants[i], want) {
			t.Errorf("constant %d = %v, want %v", i, constants[i], want)
		}
	}
}

func TestKotlinEnumWithMembers(t *testing.T) {
	rec, _ := parseKotlinCU(t, `
enum class Suit {
    HEARTS, SPADES;
    fun color(): Int { return 0; }
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "GotField"); n != 2 {
		t.Errorf("GotField fired %d times, want 2", n)
	}
	ev := findEvent(rec, "EndFieldDeclarations")
	if ev == nil {
		t.Fatal("no EndFieldDeclarations event")
	}
	if ev.Args[1] != "true" {
		t.Errorf("EndFieldDeclarations semicolon = %v, want true", ev.Args[1])
	}
	if findEvent(rec, "GotMethodDeclaration") == nil {
		t.Error("no GotMethodDeclaration event for member after constants")
	}
}

func TestKotlinCompanionObject(t *testing.T) {
	rec, _ := parseKotlinCU(t, `
class C {
    companion object Factory {
        val zero = 0
    }
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if findEvent(rec, "GotInnerType") == nil {
		t.Error("no GotInnerType event")
	}

	var kinds []string
	var names []string
	for _, e := range rec.Events {
		switch e.Name {
		case "GotTypeDef":
			kinds = append(kinds, e.Args[1])
		case "GotTypeDefName":
			names = append(names, e.Args[0])
		}
	}
	want := []string{"0", "5"} // class, then object
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("type definition kinds mismatch (-want +got):\n%s", diff)
	}
	if len(names) != 2 || !strings.Contains(names[1], "(Factory)") {
		t.Errorf("type names = %v, want C then Factory", names)
	}

	field := findEvent(rec, "GotField")
	if field == nil {
		t.Fatal("no GotField event for the property")
	}
	if !strings.Contains(field.Args[1], "(zero)") {
		t.Errorf("property name = %v, want zero", field.Args[1])
	}
	if n := countEvents(rec, "BeginExpression"); n != 1 {
		t.Errorf("BeginExpression fired %d times, want 1 (initializer)", n)
	}
	if n := countEvents(rec, "GotTypeDefEnd"); n != 2 {
		t.Errorf("GotTypeDefEnd fired %d times, want 2", n)
	}
}

func TestKotlinAnonymousCompanion(t *testing.T) {
	rec, _ := parseKotlinCU(t, "class C { companion object { } }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	// The object keyword stands in for the missing name.
	var names []string
	for _, e := range rec.Events {
		if e.Name == "GotTypeDefName" {
			names = append(names, e.Args[0])
		}
	}
	if len(names) != 2 || !strings.Contains(names[1], "(object)") {
		t.Errorf("type names = %v, want the companion named by 'object'", names)
	}
}

func TestKotlinObjectDeclaration(t *testing.T) {
	rec, _ := parseKotlinCU(t, `
object Registry : Base {
    fun lookup(name: String): Int { return 0; }
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	td := findEvent(rec, "GotTypeDef")
	if td == nil {
		t.Fatal("no GotTypeDef event")
	}
	if td.Args[1] != "5" {
		t.Errorf("type definition kind = %v, want object (5)", td.Args[1])
	}
	if ev := findEvent(rec, "GotTypeDefName"); ev == nil || !strings.Contains(ev.Args[0], "(Registry)") {
		t.Errorf("GotTypeDefName = %v, want Registry", ev)
	}
	if n := countEvents(rec, "BeginTypeDefExtends"); n != 1 {
		t.Errorf("BeginTypeDefExtends fired %d times, want 1", n)
	}
	if ev := findEvent(rec, "GotMethodDeclaration"); ev == nil || !strings.Contains(ev.Args[0], "(lookup)") {
		t.Errorf("GotMethodDeclaration = %v, want lookup", ev)
	}
	if n := countEvents(rec, "GotMethodParameter"); n != 1 {
		t.Errorf("GotMethodParameter fired %d times, want 1", n)
	}
	// Parameter type and return type are both reported.
	if n := countEvents(rec, "GotTypeSpec"); n != 3 {
		t.Errorf("GotTypeSpec fired %d times, want 3 (supertype, parameter, return)", n)
	}
}

func TestKotlinTopLevelMembers(t *testing.T) {
	rec, _ := parseKotlinCU(t, `
fun main(count: Int) {
    val greeting = "hi";
    println(greeting);
}
val version: Int = 2`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if ev := findEvent(rec, "GotMethodDeclaration"); ev == nil || !strings.Contains(ev.Args[0], "(main)") {
		t.Errorf("GotMethodDeclaration = %v, want main", ev)
	}

	var fields []string
	for _, e := range rec.Events {
		if e.Name == "GotField" {
			fields = append(fields, e.Args[1])
		}
	}
	if len(fields) != 2 || !strings.Contains(fields[0], "(greeting)") || !strings.Contains(fields[1], "(version)") {
		t.Errorf("properties = %v, want greeting then version", fields)
	}
	if n := countEvents(rec, "GotTopLevelDecl"); n != 2 {
		t.Errorf("GotTopLevelDecl fired %d times, want 2", n)
	}
}

func TestKotlinNestedFunctionInBody(t *testing.T) {
	rec, _ := parseKotlinCU(t, `
class Outer {
    fun run() {
        fun helper(n: Int) { use(n); }
        helper(1);
    }
}`)
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	var methods []string
	for _, e := range rec.Events {
		if e.Name == "GotMethodDeclaration" {
			methods = append(methods, e.Args[0])
		}
	}
	if len(methods) != 2 || !strings.Contains(methods[0], "(run)") || !strings.Contains(methods[1], "(helper)") {
		t.Errorf("methods = %v, want run then helper", methods)
	}
}

func TestKotlinInitBlock(t *testing.T) {
	rec, _ := parseKotlinCU(t, "class C { init { count = 1; } }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if n := countEvents(rec, "BeginInitBlock"); n != 1 {
		t.Errorf("BeginInitBlock fired %d times, want 1", n)
	}
	ev := findEvent(rec, "EndInitBlock")
	if ev == nil {
		t.Fatal("no EndInitBlock event")
	}
	if ev.Args[1] != "true" {
		t.Errorf("EndInitBlock included = %v, want true", ev.Args[1])
	}
}

func TestKotlinModifiers(t *testing.T) {
	rec, _ := parseKotlinCU(t, "open data class Point(val x: Int, val y: Int)")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	var mods []string
	for _, e := range rec.Events {
		if e.Name == "GotModifier" {
			mods = append(mods, e.Args[0])
		}
	}
	if len(mods) != 2 {
		t.Errorf("GotModifier fired %d times (%v), want 2", len(mods), mods)
	}

	// Soft modifiers lex as identifiers but still count in modifier
	// position.
	rec, _ = parseKotlinCU(t, "class C { override fun toString(): String { return s; } }")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	if ev := findEvent(rec, "GotModifier"); ev == nil || !strings.Contains(ev.Args[0], "(override)") {
		t.Errorf("GotModifier = %v, want override", ev)
	}
	if findEvent(rec, "GotMethodDeclaration") == nil {
		t.Error("no GotMethodDeclaration event")
	}
}

// Import statements end at ';' in this grammar.
func TestKotlinImports(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		events []string
		errors int
	}{
		{
			name:   "single import",
			src:    "import java.util.Locale;",
			events: []string{"GotImport", "GotImportStmtSemi"},
		},
		{
			name:   "wildcard import",
			src:    "import java.util.*;",
			events: []string{"GotWildcardImport", "GotImportStmtSemi"},
		},
		{
			name:   "missing semicolon",
			src:    "import java.util.Locale",
			errors: 1,
		},
		{
			name:   "trailing dot",
			src:    "import java.util.;",
			errors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := parseKotlinCU(t, tt.src)
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

// Package statements need no semicolon; the next declaration keyword
// ends them.
func TestKotlinPackageStatement(t *testing.T) {
	rec, _ := parseKotlinCU(t, "package com.example\nclass C")
	if len(rec.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", rec.Errors())
	}
	pkg := findEvent(rec, "GotPackage")
	if pkg == nil {
		t.Fatal("no GotPackage event")
	}
	if !strings.Contains(pkg.Args[0], "(com)") || !strings.Contains(pkg.Args[0], "(example)") {
		t.Errorf("package parts = %v, want com and example", pkg.Args[0])
	}
	if findEvent(rec, "GotPackageSemi") != nil {
		t.Error("GotPackageSemi fired without a semicolon")
	}
	if findEvent(rec, "GotTypeDef") == nil {
		t.Error("declaration after package statement was lost")
	}

	rec, _ = parseKotlinCU(t, "package com.example;")
	if findEvent(rec, "GotPackageSemi") == nil {
		t.Error("GotPackageSemi missing for terminated package statement")
	}
}

func TestKotlinUnclosedBodyRecovery(t *testing.T) {
	rec, p := parseKotlinCU(t, "class C { fun m() { if (x) {")
	if len(rec.Errors()) == 0 {
		t.Error("expected at least one error for unclosed bodies")
	}
	if n := countEvents(rec, "FinishedCU"); n != 1 {
		t.Errorf("FinishedCU fired %d times, want 1", n)
	}
	if tok := p.stream.LA(1); tok.Kind != TokenEOF {
		t.Errorf("stream not drained: next token is %v", tok.Kind)
	}
	checkBalanced(t, rec)
}
