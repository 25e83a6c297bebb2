package numbering

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "retention/pkg/domain-errors"
)

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

func TestParsePattern(t *testing.T) {
	t.Run("resolves every catalog template", func(t *testing.T) {
		for _, p := range Patterns() {
			got, err := ParsePattern(p.Template())
			require.NoError(t, err)
			assert.Equal(t, p, got)
			assert.True(t, got.IsValid())
		}
	})

	t.Run("unknown template is an invalid argument", func(t *testing.T) {
		for _, tmpl := range []string{"", "KKK-TASK-XXX", "kkk-client", "NNNN"} {
			_, err := ParsePattern(tmpl)
			require.Error(t, err, tmpl)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidArgument))
		}
	})

	t.Run("zero value is not in the catalog", func(t *testing.T) {
		var p Pattern
		assert.False(t, p.IsValid())
		assert.False(t, p.Match("VAN-ABC"))
	})
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern   Pattern
		candidate string
		want      bool
	}{
		{LocationClient, "VAN-ACME", true},
		{LocationClient, "VAN-A", false},
		{LocationClient, "van-ACME", false},
		{LocationClient, "XVAN-ACME", false},
		{LocationClientTask, "VAN-ACME-0042", true},
		{LocationClientTask, "VAN-ACME-042", false},
		{LocationAccounting, "TOR-1234.56", true},
		{LocationAccounting, "TOR-1234-56", false},
		{Case, "CASE-2021-000123", true},
		{Case, "CASE-2021-00123", false},
		{Subject, "HR-007", true},
		{Subject, "HUMANRESOURCES-007", false},
		{Proposal, "P-2024-001", true},
		{Proposal, "P-24-001", false},
		{Project, "PRJ-2312-A1B", true},
		{Project, "PRJ-2313-A1B", false},
		{Project, "prefix PRJ-2312-A1B", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.Name()+"/"+tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Match(tt.candidate))
		})
	}
}

// TestMatchVolumeSuffix covers the volume rule for every pattern: a ":NN"
// candidate matches iff the prefix matches and the suffix is two digits.
func TestMatchVolumeSuffix(t *testing.T) {
	valid := map[Pattern]string{
		LocationClient:     "VAN-ACME",
		LocationClientTask: "VAN-ACME-0042",
		LocationAccounting: "TOR-1234.56",
		Case:               "CASE-2021-000123",
		Subject:            "HR-007",
		Proposal:           "P-2024-001",
		Project:            "PRJ-2312-A1B",
	}
	require.Len(t, valid, len(Patterns()))

	for p, number := range valid {
		t.Run(p.Name(), func(t *testing.T) {
			assert.True(t, p.Match(number))
			assert.True(t, p.Match(number+":01"))
			assert.True(t, p.Match(number+":99"))
			assert.False(t, p.Match(number+":1"))
			assert.False(t, p.Match(number+":001"))
			assert.False(t, p.Match(number+":AB"))
			assert.False(t, p.Match(number+":"))
			assert.False(t, p.Match(number+":01:02"))
			assert.False(t, p.Match("#"+number+":01"))
		})
	}
}

func TestMatchesLocation(t *testing.T) {
	t.Run("location patterns compare the first three characters", func(t *testing.T) {
		assert.True(t, LocationClient.MatchesLocation("VAN", "VAN-ACME"))
		assert.False(t, LocationClient.MatchesLocation("TOR", "VAN-ACME"))
		assert.False(t, LocationClientTask.MatchesLocation("van", "VAN-ACME-0001"))
		assert.False(t, LocationAccounting.MatchesLocation("VAN", "VA"))
	})

	t.Run("patterns without a location placeholder always agree", func(t *testing.T) {
		for _, p := range []Pattern{Case, Subject, Proposal, Project} {
			assert.False(t, p.HasLocation())
			assert.True(t, p.MatchesLocation("VAN", "CASE-2021-000123"))
			assert.True(t, p.MatchesLocation("", ""))
		}
	})
}

func TestFillAutoGenField(t *testing.T) {
	t.Run("pads to the template width", func(t *testing.T) {
		assert.Equal(t, "VAN-ACME-0007", LocationClientTask.FillAutoGenField("VAN-ACME", fixedSource(7)))
		assert.Equal(t, "HR-042", Subject.FillAutoGenField("HR", fixedSource(42)))
		assert.Equal(t, "P-2024-999", Proposal.FillAutoGenField("P-2024", fixedSource(999)))
		assert.Equal(t, "P-2024-000", Proposal.FillAutoGenField("P-2024", fixedSource(0)))
	})

	t.Run("patterns without the token return the input", func(t *testing.T) {
		for _, p := range []Pattern{LocationClient, LocationAccounting, Case, Project} {
			assert.False(t, p.HasAutoFill())
			assert.Equal(t, 0, p.AutoFillWidth())
			assert.Equal(t, "anything", p.FillAutoGenField("anything", fixedSource(5)))
		}
	})

	t.Run("widths observed in the catalog", func(t *testing.T) {
		assert.Equal(t, 4, LocationClientTask.AutoFillWidth())
		assert.Equal(t, 3, Subject.AutoFillWidth())
		assert.Equal(t, 3, Proposal.AutoFillWidth())
	})
}

// TestFillAutoGenField_GeneratedNumbersMatch draws from a seeded generator and
// checks every result re-matches its pattern with a suffix of the right width
// and range.
func TestFillAutoGenField_GeneratedNumbersMatch(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	bases := map[Pattern]string{
		LocationClientTask: "VAN-ACME",
		Subject:            "HR",
		Proposal:           "P-2024",
	}

	for p, base := range bases {
		for i := 0; i < 200; i++ {
			number := p.FillAutoGenField(base, rnd)
			require.True(t, p.Match(number), "%s should match %s", number, p)

			suffix := strings.TrimPrefix(number, base)
			require.Len(t, suffix, p.AutoFillWidth()+1)
			value, err := strconv.Atoi(suffix[1:])
			require.NoError(t, err)
			require.GreaterOrEqual(t, value, 0)
			require.LessOrEqual(t, value, 999)
		}
	}
}

func TestEntropySourceRange(t *testing.T) {
	src := EntropySource()
	for i := 0; i < 1000; i++ {
		v := src.IntN(autoFillRange)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, autoFillRange)
	}
}
