package descr_test

import (
	"testing"
	"time"

	"github.com/bjaus/descr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: end-to-end ---

type Pet struct {
	Name string
}

func (p Pet) Describe(f *descr.Formatter) {
	f.Append(p.Name)
}

func (p Pet) String() string { return descr.String(p) }

type Person struct {
	FirstName string
	LastName  string
	Age       int
	Pet       *Pet
}

func (p Person) Describe(f *descr.Formatter) {
	f.IncludeNilValues = false
	f.Append(p.FirstName + " " + p.LastName)
	f.AppendLabeled("age", p.Age)
	f.AppendLabeled("pet", p.Pet)
}

func (p Person) String() string { return descr.String(p) }

type Point struct {
	X int
	Y *int
}

func (p Point) Describe(f *descr.Formatter) {
	f.AppendLabeled("x", p.X)
	f.AppendLabeled("y", p.Y)
}

type Apple struct{}

func (Apple) Describe(*descr.Formatter) {}

type renamedApple struct {
	name string
}

func (a renamedApple) Describe(f *descr.Formatter) {
	f.TypeName = a.name
}

// --- Test types: conversions ---

type temperature struct {
	celsius int
}

func (t temperature) String() string { return "always sunny" }

func (t temperature) Describe(f *descr.Formatter) {
	f.Append(t)
}

type label string

// --- Core rendering ---

func TestPersonScenario(t *testing.T) {
	t.Parallel()
	p := Person{FirstName: "Matt", LastName: "Comi", Age: 42}
	assert.Equal(t, `Person("Matt Comi", age: 42)`, p.String())
}

func TestPersonScenarioWithPet(t *testing.T) {
	t.Parallel()
	p := Person{FirstName: "Matt", LastName: "Comi", Age: 42, Pet: &Pet{Name: "Rex"}}
	assert.Equal(t, `Person("Matt Comi", age: 42, pet: Pet("Rex"))`, p.String())
}

func TestPointNilPolicy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Point(x: 1, y: nil)", descr.String(Point{X: 1}))

	f := descr.New("Point")
	f.AppendLabeled("x", 1)
	f.AppendLabeled("y", nil)
	f.IncludeNilValues = false
	assert.Equal(t, "Point(x: 1)", f.String())

	f = descr.New("Point")
	f.IncludeNilValues = false
	f.AppendLabeled("x", nil)
	f.AppendLabeled("y", nil)
	assert.Equal(t, "Point()", f.String())
}

func TestTypeNameOverride(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Apple()", descr.String(Apple{}))
	assert.Equal(t, "Banana()", descr.String(renamedApple{name: "Banana"}))
	assert.Equal(t, "()", descr.String(renamedApple{}))
}

func TestTypeNameOverrideKeepsComponents(t *testing.T) {
	t.Parallel()
	f := descr.New("Old")
	f.AppendLabeled("x", 1)
	f.TypeName = "New"
	assert.Equal(t, "New(x: 1)", f.String())
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()
	f := descr.New("Point")
	f.AppendLabeled("x", 1)
	f.AppendLabeled("y", nil)
	first := f.String()
	assert.Equal(t, first, f.String())
}

func TestUnlabeledAppendOrder(t *testing.T) {
	t.Parallel()
	f := descr.New("Mixed")
	f.Append("hello").Append(42).Append(3.5)
	assert.Equal(t, `Mixed("hello", 42, 3.5)`, f.String())
}

func TestDuplicateLabelsPreserved(t *testing.T) {
	t.Parallel()
	f := descr.New("Dup")
	f.AppendLabeled("v", 1)
	f.AppendLabeled("v", 2)
	assert.Equal(t, "Dup(v: 1, v: 2)", f.String())
}

func TestPointerIndirection(t *testing.T) {
	t.Parallel()
	n := 7
	f := descr.New("Box")
	f.AppendLabeled("n", &n)
	assert.Equal(t, "Box(n: 7)", f.String())
}

func TestNestedNilPointerAbsent(t *testing.T) {
	t.Parallel()
	var inner *int
	f := descr.New("Box")
	f.AppendLabeled("n", &inner)
	assert.Equal(t, "Box(n: nil)", f.String())
}

func TestTypedNilIsAbsent(t *testing.T) {
	t.Parallel()
	var m map[string]int
	var s []int
	f := descr.New("Zeros")
	f.AppendLabeled("m", m)
	f.AppendLabeled("s", s)
	assert.Equal(t, "Zeros(m: nil, s: nil)", f.String())
}

// --- Quoting ---

func TestNamedStringTypeQuoted(t *testing.T) {
	t.Parallel()
	f := descr.New("Tag")
	f.Append(label("beta"))
	assert.Equal(t, `Tag("beta")`, f.String())
}

func TestStringerConversionUnquoted(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "temperature(always sunny)", descr.String(temperature{celsius: 30}))
}

func TestBytesNotQuoted(t *testing.T) {
	t.Parallel()
	f := descr.New("Raw")
	f.Append([]byte("ab"))
	assert.Equal(t, "Raw([97 98])", f.String())
}

// --- Styles ---

func TestPercentStyle(t *testing.T) {
	t.Parallel()
	progress := 0.2
	f := descr.New("Job")
	descr.AppendLabeledWith(f, "progress", &progress, descr.Percent(0))
	assert.Equal(t, "Job(progress: 20%)", f.String())
}

func TestPercentStyleDecimals(t *testing.T) {
	t.Parallel()
	progress := 0.3333
	f := descr.New("Job")
	descr.AppendLabeledWith(f, "progress", &progress, descr.Percent(1))
	assert.Equal(t, "Job(progress: 33.3%)", f.String())
}

func TestStyleSkippedForNil(t *testing.T) {
	t.Parallel()
	f := descr.New("Job")
	descr.AppendLabeledWith(f, "progress", nil, descr.Percent(0))
	assert.Equal(t, "Job(progress: nil)", f.String())

	f.IncludeNilValues = false
	assert.Equal(t, "Job()", f.String())
}

func TestStyleKeepsStringQuoting(t *testing.T) {
	t.Parallel()
	long := "a very long description"
	f := descr.New("Note")
	descr.AppendWith(f, &long, descr.Ellipsis(6))
	assert.Equal(t, `Note("a v...")`, f.String())
}

func TestEllipsisShortStringUntouched(t *testing.T) {
	t.Parallel()
	s := "ok"
	f := descr.New("Note")
	descr.AppendWith(f, &s, descr.Ellipsis(10))
	assert.Equal(t, `Note("ok")`, f.String())
}

func TestTimeLayoutStyle(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f := descr.New("Event")
	descr.AppendLabeledWith(f, "when", &ts, descr.TimeLayout("2006-01-02"))
	assert.Equal(t, "Event(when: 2024-01-15)", f.String())
}

// --- Components view ---

func TestComponentsView(t *testing.T) {
	t.Parallel()
	f := descr.New("Point")
	f.AppendLabeled("x", 1)
	f.AppendLabeled("y", nil)
	f.Append("tag")

	got := f.Components()
	require.Len(t, got, 3)
	assert.Equal(t, descr.Component{Label: "x", Value: "1"}, got[0])
	assert.Equal(t, descr.Component{Label: "y", Nil: true}, got[1])
	assert.Equal(t, descr.Component{Value: "tag", Quoted: true}, got[2])
}

func TestComponentsIgnorePolicy(t *testing.T) {
	t.Parallel()
	f := descr.New("Point")
	f.IncludeNilValues = false
	f.AppendLabeled("y", nil)
	// Components reports everything appended; only rendering filters.
	require.Len(t, f.Components(), 1)
	assert.Equal(t, "Point()", f.String())
}

func TestPointerValueTypeName(t *testing.T) {
	t.Parallel()
	p := &Point{X: 1}
	assert.Equal(t, "Point(x: 1, y: nil)", descr.String(p))
}
