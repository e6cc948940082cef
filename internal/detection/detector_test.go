package detection

import (
	"errors"
	"testing"

	"github.com/ironsheep/input-detect-mcp/internal/catalog"
	"github.com/ironsheep/input-detect-mcp/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(name string, opts ...scene.Option) *scene.Element {
	return scene.NewElement(scene.KindFrame, name, opts...)
}

func text(id, chars string) *scene.Element {
	return scene.NewElement(scene.KindText, chars, scene.WithID(id), scene.WithCharacters(chars))
}

func layer(kind scene.Kind, id, name string) *scene.Element {
	return scene.NewElement(kind, name, scene.WithID(id))
}

// failingContainer is a Container whose host traversal always fails.
type failingContainer struct{ err error }

func (f failingContainer) ID() string         { return "9:9" }
func (f failingContainer) Kind() scene.Kind   { return scene.KindFrame }
func (f failingContainer) Name() string       { return "Broken" }
func (f failingContainer) Characters() string { return "" }
func (f failingContainer) FindAll(func(scene.Node) bool) ([]scene.Node, error) {
	return nil, f.err
}
func (f failingContainer) Dimensions() (float64, float64, bool) { return 200, 40, true }

func TestDetect_EmailScenario(t *testing.T) {
	node := frame("Email Field",
		scene.WithSize(200, 40),
		scene.WithChildren(
			text("t1", "Email Address"),
			layer(scene.KindVector, "v1", "mail-icon"),
		),
	)

	d := New(nil)
	got, err := d.Detect(node)
	require.NoError(t, err)
	assert.Equal(t, "email", got)

	r, err := d.Explain(node)
	require.NoError(t, err)
	assert.Equal(t, 6, r.BestScore)

	s, ok := r.ScoreFor("email")
	require.True(t, ok)
	assert.Equal(t, LabelPoints, s.Label)
	assert.Equal(t, IconPoints, s.Icon)
	assert.Equal(t, SizePoints, s.Size)
	assert.Equal(t, 0, s.Shape)
	assert.Contains(t, s.LabelKeywords, "email")
	assert.Contains(t, s.IconKeywords, "mail")
	assert.Contains(t, s.IconNodes, "v1")
}

func TestDetect_RadioScenario(t *testing.T) {
	node := frame("Option",
		scene.WithSize(20, 20),
		scene.WithChildren(layer(scene.KindEllipse, "e1", "Ellipse 1")),
	)

	d := New(nil)
	got, err := d.Detect(node)
	require.NoError(t, err)
	assert.Equal(t, "radio", got)

	r, err := d.Explain(node)
	require.NoError(t, err)
	assert.Equal(t, 2, r.BestScore)

	checkbox, _ := r.ScoreFor("checkbox")
	assert.Equal(t, 1, checkbox.Total, "checkbox gets size only")
	radio, _ := r.ScoreFor("radio")
	assert.Equal(t, []string{"e1"}, radio.ShapeNodes)
}

func TestDetect_EmptyContainerFallsBack(t *testing.T) {
	d := New(nil)

	got, err := d.Detect(frame("Empty"))
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultID, got)

	r, err := d.Explain(frame("Empty"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.BestScore)
	for _, s := range r.Scores {
		assert.Equal(t, 0, s.Total, "signature %s", s.ID)
	}
	_, ok := r.Winner()
	assert.False(t, ok)
}

func TestDetect_EmptyCatalog(t *testing.T) {
	empty, err := catalog.New()
	require.NoError(t, err)

	got, err := New(empty).Detect(frame("Any", scene.WithSize(200, 40)))
	require.NoError(t, err)
	assert.Equal(t, "text", got)
}

func TestDetect_CustomFallback(t *testing.T) {
	d := New(nil, WithFallback("none"))
	assert.Equal(t, "none", d.Fallback())

	got, err := d.Detect(frame("Empty"))
	require.NoError(t, err)
	assert.Equal(t, "none", got)
}

func TestDetect_Deterministic(t *testing.T) {
	node := frame("Search",
		scene.WithSize(210, 38),
		scene.WithChildren(
			layer(scene.KindRectangle, "r", "Bg"),
			text("t", "Find a product"),
			layer(scene.KindInstance, "i", "icon/magnifier"),
		),
	)

	d := New(nil)
	first, err := d.Detect(node)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := d.Detect(node)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
	assert.Equal(t, "search", first)
}

func TestDetect_LabelDominatesShape(t *testing.T) {
	node := frame("Field",
		scene.WithChildren(text("t", "Password")),
	)

	r, err := New(nil).Explain(node)
	require.NoError(t, err)
	assert.Equal(t, "password", r.Best)

	pw, _ := r.ScoreFor("password")
	for _, s := range r.Scores {
		if s.Label == 0 {
			assert.Greater(t, pw.Total, s.Total, "password vs %s", s.ID)
		}
	}
}

func TestDetect_LabelBeatsSizeAndShape(t *testing.T) {
	// Every rectangle signature sized 200×40 gets size+shape = 2, but only
	// password also has the label.
	node := frame("Field",
		scene.WithSize(200, 40),
		scene.WithChildren(
			layer(scene.KindRectangle, "r", "Bg"),
			text("t", "Enter secret"),
		),
	)

	got, err := New(nil).Detect(node)
	require.NoError(t, err)
	assert.Equal(t, "password", got)
}

func TestDetect_IconPlusLabelAdditivity(t *testing.T) {
	node := frame("Phone",
		scene.WithChildren(
			text("t", "Mobile number"),
			layer(scene.KindVector, "v", "Phone Icon"),
		),
	)

	r, err := New(nil).Explain(node)
	require.NoError(t, err)

	tel, _ := r.ScoreFor("tel")
	assert.GreaterOrEqual(t, tel.Total, LabelPoints+IconPoints)
	assert.Equal(t, "tel", r.Best)

	// "number" matches the number signature's label too, but it has no icon.
	number, _ := r.ScoreFor("number")
	assert.Equal(t, LabelPoints, number.Total)
}

func TestDetect_TieBreakByCatalogOrder(t *testing.T) {
	// A rectangle plus a 200×40 size ties text, password, email, date, file,
	// search and tel at 2. text is first.
	node := frame("Plain",
		scene.WithSize(200, 40),
		scene.WithChildren(layer(scene.KindRectangle, "r", "Bg")),
	)

	r, err := New(nil).Explain(node)
	require.NoError(t, err)
	assert.Equal(t, "text", r.Best)
	assert.Equal(t, 2, r.BestScore)

	for _, id := range []string{"password", "email", "date", "file", "search", "tel"} {
		s, _ := r.ScoreFor(id)
		assert.Equal(t, 2, s.Total, id)
	}
}

func TestDetect_TieBreakCustomOrder(t *testing.T) {
	sigs := []catalog.Signature{
		{ID: "alpha", DisplayName: "Alpha", Shape: catalog.ShapeNone, LabelKeywords: []string{"go"}},
		{ID: "beta", DisplayName: "Beta", Shape: catalog.ShapeNone, LabelKeywords: []string{"go"}},
	}
	node := frame("Go", scene.WithChildren(text("t", "Go")))

	ab, err := catalog.New(sigs[0], sigs[1])
	require.NoError(t, err)
	got, err := New(ab).Detect(node)
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)

	ba, err := catalog.New(sigs[1], sigs[0])
	require.NoError(t, err)
	got, err = New(ba).Detect(node)
	require.NoError(t, err)
	assert.Equal(t, "beta", got)
}

func TestDetect_SquareShapeNeverScores(t *testing.T) {
	// Documented asymmetry: a square signature gets no shape point from a
	// rectangle descendant, unlike rectangle signatures.
	node := frame("Box",
		scene.WithChildren(layer(scene.KindRectangle, "r", "Box")),
	)

	r, err := New(nil).Explain(node)
	require.NoError(t, err)

	checkbox, _ := r.ScoreFor("checkbox")
	assert.Equal(t, 0, checkbox.Shape)
	text, _ := r.ScoreFor("text")
	assert.Equal(t, ShapePoints, text.Shape)
}

func TestDetect_CheckboxViaLabelIconSize(t *testing.T) {
	node := frame("Terms",
		scene.WithSize(24, 24),
		scene.WithChildren(
			layer(scene.KindRectangle, "r", "Box"),
			layer(scene.KindVector, "v", "tick"),
			text("t", "I agree to the terms"),
		),
	)

	r, err := New(nil).Explain(node)
	require.NoError(t, err)
	assert.Equal(t, "checkbox", r.Best)
	assert.Equal(t, LabelPoints+IconPoints+SizePoints, r.BestScore)
}

func TestDetect_DeepIconSearch(t *testing.T) {
	node := frame("Upload",
		scene.WithChildren(
			scene.NewElement(scene.KindGroup, "Row", scene.WithChildren(
				scene.NewElement(scene.KindGroup, "Trailing", scene.WithChildren(
					layer(scene.KindVector, "deep", "paperclip"),
				)),
			)),
		),
	)

	r, err := New(nil).Explain(node)
	require.NoError(t, err)
	file, _ := r.ScoreFor("file")
	assert.Equal(t, IconPoints, file.Icon)
	assert.Equal(t, []string{"deep"}, file.IconNodes)
	assert.Equal(t, "file", r.Best)
}

func TestDetect_OwnNameNotSearched(t *testing.T) {
	// The candidate's own name is not a descendant.
	node := frame("calendar")

	got, err := New(nil).Detect(node)
	require.NoError(t, err)
	assert.Equal(t, "text", got)
}

func TestDetect_CaseInsensitive(t *testing.T) {
	node := frame("F", scene.WithChildren(
		text("t", "WEBSITE"),
		layer(scene.KindVector, "v", "GLOBE"),
	))

	got, err := New(nil).Detect(node)
	require.NoError(t, err)
	assert.Equal(t, "url", got)
}

func TestDetect_SizeTolerances(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantSize      int
	}{
		{"exact", 200, 40, SizePoints},
		{"inside both", 249, 59, SizePoints},
		{"width at limit", 250, 40, 0},
		{"height at limit", 200, 60, 0},
		{"below", 151, 21, SizePoints},
		{"zero width", 0, 40, 0},
		{"zero height", 200, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := frame("F", scene.WithSize(tt.width, tt.height))
			r, err := New(nil).Explain(node)
			require.NoError(t, err)
			s, _ := r.ScoreFor("text")
			assert.Equal(t, tt.wantSize, s.Size)
		})
	}
}

func TestDetect_NoGeometryDisablesSize(t *testing.T) {
	node := scene.NewElement(scene.KindGroup, "G")

	r, err := New(nil).Explain(node)
	require.NoError(t, err)
	assert.Zero(t, r.Width)
	assert.Zero(t, r.Height)
	for _, s := range r.Scores {
		assert.Equal(t, 0, s.Size, s.ID)
	}
}

func TestDetect_EmptyNamesIgnoredForIcons(t *testing.T) {
	sig := catalog.Signature{ID: "any", DisplayName: "Any", IconKeywords: []string{""}}
	cat, err := catalog.New(sig)
	require.NoError(t, err)

	unnamed := frame("F", scene.WithChildren(layer(scene.KindVector, "v", "")))
	r, err := New(cat).Explain(unnamed)
	require.NoError(t, err)
	s, _ := r.ScoreFor("any")
	assert.Equal(t, 0, s.Icon)
}

func TestDetect_HostTraversalError(t *testing.T) {
	hostErr := errors.New("document closed")

	_, err := New(nil).Detect(failingContainer{err: hostErr})
	require.Error(t, err)

	var hte *HostTraversalError
	require.True(t, errors.As(err, &hte))
	assert.Equal(t, "9:9", hte.NodeID)
	assert.Equal(t, "Broken", hte.NodeName)
	assert.True(t, errors.Is(err, hostErr))
	assert.Contains(t, err.Error(), "document closed")
}

func TestExplain_ScoresInCatalogOrder(t *testing.T) {
	r, err := New(nil).Explain(frame("F"))
	require.NoError(t, err)

	entries := catalog.Default().Entries()
	require.Len(t, r.Scores, len(entries))
	for i, sig := range entries {
		assert.Equal(t, sig.ID, r.Scores[i].ID)
		assert.Equal(t, sig.DisplayName, r.Scores[i].DisplayName)
	}
}

func TestExplain_LabelsLowercased(t *testing.T) {
	node := frame("F", scene.WithChildren(text("a", "First Name"), text("b", "REQUIRED")))

	r, err := New(nil).Explain(node)
	require.NoError(t, err)
	assert.Equal(t, []string{"first name", "required"}, r.Labels)
}

func TestScore_Nodes(t *testing.T) {
	s := Score{
		LabelNodes: []string{"t1", "t2"},
		IconNodes:  []string{"t2", "v1"},
		ShapeNodes: []string{"r1"},
	}
	assert.Equal(t, []string{"t1", "t2", "v1", "r1"}, s.Nodes())
}

func TestReport_Winner(t *testing.T) {
	node := frame("F", scene.WithChildren(text("t", "Choose an option")))

	r, err := New(nil).Explain(node)
	require.NoError(t, err)

	w, ok := r.Winner()
	require.True(t, ok)
	assert.Equal(t, "radio", w.ID)
	assert.Equal(t, []string{"t"}, w.LabelNodes)
}
