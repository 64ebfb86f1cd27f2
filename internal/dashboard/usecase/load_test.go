package usecase

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

func TestLoadInfersKinds(t *testing.T) {
	raw := []byte("id,score,city,active\n1,1.5,NY,true\n2,2.5,LA,false\n3,NA,,true\n")

	tbl, err := Load(raw)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Rows)
	assert.Equal(t, []string{"id", "score", "city", "active"}, tbl.Names())

	kinds := map[string]entity.ColumnKind{}
	for _, c := range tbl.Columns {
		kinds[c.Name] = c.Kind
	}
	assert.Equal(t, entity.KindNumeric, kinds["id"])
	assert.Equal(t, entity.KindNumeric, kinds["score"])
	assert.Equal(t, entity.KindCategorical, kinds["city"])
	assert.Equal(t, entity.KindCategorical, kinds["active"])

	score, _ := tbl.Column("score")
	assert.Equal(t, []bool{false, false, true}, score.Missing)
	city, _ := tbl.Column("city")
	assert.Equal(t, []bool{false, false, true}, city.Missing)
	assert.Equal(t, "", city.Cell(2))
}

func TestLoadAllMissingColumnIsCategorical(t *testing.T) {
	tbl, err := Load([]byte("a,b\n1,\n2,\n"))
	require.NoError(t, err)

	b, ok := tbl.Column("b")
	require.True(t, ok)
	assert.Equal(t, entity.KindCategorical, b.Kind)
	assert.Equal(t, 2, b.MissingCount())
}

func TestLoadRejectsUnparsableInput(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"whitespace": []byte("  \n\t"),
		"ragged":     []byte("a,b\n1,2,3\n"),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(raw)
			require.Error(t, err)

			var perr *pkgerror.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, http.StatusBadRequest, perr.StatusCode())
			assert.Equal(t, "invalid csv file", perr.Msg())
		})
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	tbl, err := Load([]byte("a,b\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, tbl.Rows)
	assert.Equal(t, []string{"a", "b"}, tbl.Names())
	for _, c := range tbl.Columns {
		assert.Equal(t, entity.KindCategorical, c.Kind, c.Name)
		assert.Equal(t, 0, c.Len(), c.Name)
	}

	report := Clean(tbl)
	assert.Equal(t, 0, report.Total())
}

func TestLoadTrimsCells(t *testing.T) {
	tbl, err := Load([]byte("age, score, city\n25, 3.5, NY \n 31 ,4.0,LA\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "score", "city"}, tbl.Names())

	age, _ := tbl.Column("age")
	require.Equal(t, entity.KindNumeric, age.Kind)
	assert.Equal(t, []float64{25, 31}, age.Numbers)

	score, _ := tbl.Column("score")
	assert.Equal(t, entity.KindNumeric, score.Kind)

	city, _ := tbl.Column("city")
	assert.Equal(t, []string{"NY", "LA"}, city.Labels)
}

func TestLoadPadsShortRows(t *testing.T) {
	tbl, err := Load([]byte("a,b\n1\n2,3\n"))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Rows)

	b, _ := tbl.Column("b")
	assert.Equal(t, entity.KindNumeric, b.Kind)
	assert.Equal(t, []bool{true, false}, b.Missing)
}
