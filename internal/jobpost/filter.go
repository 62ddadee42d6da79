package jobpost

import (
	"strconv"
	"strings"
	"time"

	"jobportal-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// RawParams are the search query values as they arrived. A nil pointer means the parameter was not sent.
type RawParams struct {
	Job      *string
	Location *string

	PartTime   *string
	FullTime   *string
	Freelance  *string
	Internship *string

	RemoteOnly    *string
	OfficeOnly    *string
	PartialRemote *string

	Today  bool
	Days7  bool
	Days30 bool
}

// FacetSet is the active values of one filter dimension.
// Defaulted is set when the caller chose nothing and every value was selected for them.
type FacetSet[T ~string] struct {
	Values    []T
	Defaulted bool
}

// Contains reports whether v is one of the active values
func (f FacetSet[T]) Contains(v T) bool {
	for _, x := range f.Values {
		if x == v {
			return true
		}
	}
	return false
}

// Strings returns the active values as plain strings for query binding
func (f FacetSet[T]) Strings() []string {
	out := make([]string, 0, len(f.Values))
	for _, v := range f.Values {
		out = append(out, string(v))
	}
	return out
}

// SearchSpec is a normalized search request
type SearchSpec struct {
	Keyword  string
	Location string
	Types    FacetSet[model.JobType]
	Modes    FacetSet[model.WorkMode]
	// Since is an inclusive lower bound on the posted date, nil when there is no recency filter
	Since *time.Time
}

// Resolve turns raw parameters into a SearchSpec. The second result is true when
// nothing narrows the search and the caller can list every post instead.
func Resolve(p RawParams, now time.Time) (SearchSpec, bool) {
	spec := SearchSpec{
		Keyword:  normalizeText(p.Job),
		Location: normalizeText(p.Location),
		Since:    recencyCutoff(p, now),
	}

	spec.Types = resolveFacet(
		[]*string{p.PartTime, p.FullTime, p.Freelance, p.Internship},
		model.AllJobTypes,
	)
	spec.Modes = resolveFacet(
		[]*string{p.RemoteOnly, p.OfficeOnly, p.PartialRemote},
		model.AllWorkModes,
	)

	unfiltered := spec.Since == nil &&
		spec.Types.Defaulted &&
		spec.Modes.Defaulted &&
		spec.Keyword == "" &&
		spec.Location == ""

	return spec, unfiltered
}

// resolveFacet pairs each raw value with the marker at the same index.
// A value only activates its own marker.
func resolveFacet[T ~string](raw []*string, markers []T) FacetSet[T] {
	allAbsent := true
	for _, r := range raw {
		if r != nil {
			allAbsent = false
			break
		}
	}
	if allAbsent {
		return FacetSet[T]{Values: append([]T(nil), markers...), Defaulted: true}
	}

	set := FacetSet[T]{Values: []T{}}
	for i, r := range raw {
		if r != nil && *r == string(markers[i]) {
			set.Values = append(set.Values, markers[i])
		}
	}
	return set
}

// recencyCutoff applies days30 > days7 > today
func recencyCutoff(p RawParams, now time.Time) *time.Time {
	var days int
	switch {
	case p.Days30:
		days = 30
	case p.Days7:
		days = 7
	case p.Today:
		days = 0
	default:
		return nil
	}
	y, m, d := now.Date()
	cutoff := time.Date(y, m, d-days, 0, 0, 0, 0, now.Location())
	return &cutoff
}

func normalizeText(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// RawParamsFromQuery reads search parameters from the request query string.
// Unparseable recency flags count as false.
func RawParamsFromQuery(c *gin.Context) RawParams {
	opt := func(key string) *string {
		if v, ok := c.GetQuery(key); ok {
			return &v
		}
		return nil
	}
	flag := func(key string) bool {
		return parseFlag(c.Query(key))
	}

	return RawParams{
		Job:           opt("job"),
		Location:      opt("location"),
		PartTime:      opt("partTime"),
		FullTime:      opt("fullTime"),
		Freelance:     opt("freelance"),
		Internship:    opt("internship"),
		RemoteOnly:    opt("remoteOnly"),
		OfficeOnly:    opt("officeOnly"),
		PartialRemote: opt("partialRemote"),
		Today:         flag("today"),
		Days7:         flag("days7"),
		Days30:        flag("days30"),
	}
}

// parseFlag reads a checkbox style boolean. on, yes and the strconv true forms
// are true, anything else is false.
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
