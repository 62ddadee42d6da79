package jobpost

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobportal-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	recruiterA = Viewer{Kind: Recruiter, UserID: uuid.MustParse("11111111-1111-1111-1111-111111111111")}
	recruiterB = Viewer{Kind: Recruiter, UserID: uuid.MustParse("22222222-2222-2222-2222-222222222222")}
	seeker     = Viewer{Kind: JobSeeker, UserID: uuid.MustParse("33333333-3333-3333-3333-333333333333")}
	admin      = Viewer{Kind: Admin, UserID: uuid.MustParse("44444444-4444-4444-4444-444444444444")}
)

type fixture struct {
	svc      *Service
	jobs     *memJobStore
	activity *memActivityStore
	files    *memFileStore

	golang, barista, intern, designer model.JobPost
}

func daysAgo(n int, hour int) *time.Time {
	t := time.Date(2026, time.March, 15-n, hour, 0, 0, 0, time.UTC)
	return &t
}

func uintPtr(v uint) *uint { return &v }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	jobs := newMemJobStore()
	jobs.locations[1] = model.JobLocation{ID: 1, City: "Bangkok", Country: "Thailand"}
	jobs.locations[2] = model.JobLocation{ID: 2, City: "Chiang Mai", Country: "Thailand"}
	jobs.companies[1] = model.JobCompany{ID: 1, Name: "Gopher Co"}

	f := &fixture{
		jobs:     jobs,
		activity: &memActivityStore{},
		files:    &memFileStore{},
	}

	f.golang = jobs.put(model.JobPost{
		PostedByID: recruiterA.UserID,
		PostedDate: daysAgo(1, 10),
		EditableJobPostInfo: model.EditableJobPostInfo{
			Title:         "Golang Developer",
			Description:   "Build backend services",
			JobType:       model.JobTypeFullTime,
			Remote:        model.WorkModeRemoteOnly,
			JobLocationID: uintPtr(1),
			JobCompanyID:  uintPtr(1),
		},
	})
	f.barista = jobs.put(model.JobPost{
		PostedByID: recruiterA.UserID,
		PostedDate: daysAgo(7, 9),
		EditableJobPostInfo: model.EditableJobPostInfo{
			Title:         "Barista",
			Description:   "Coffee and golang talk",
			JobType:       model.JobTypePartTime,
			Remote:        model.WorkModeOfficeOnly,
			JobLocationID: uintPtr(2),
		},
	})
	f.intern = jobs.put(model.JobPost{
		PostedByID: recruiterB.UserID,
		PostedDate: daysAgo(40, 12),
		EditableJobPostInfo: model.EditableJobPostInfo{
			Title:         "Data Intern",
			JobType:       model.JobTypeInternship,
			Remote:        model.WorkModePartialRemote,
			JobLocationID: uintPtr(1),
		},
	})
	f.designer = jobs.put(model.JobPost{
		PostedByID: recruiterB.UserID,
		EditableJobPostInfo: model.EditableJobPostInfo{
			Title:   "Designer",
			JobType: model.JobTypeFreelance,
			Remote:  model.WorkModeRemoteOnly,
		},
	})

	f.svc = NewService(jobs, f.activity, f.files, nil,
		WithClock(func() time.Time { return fixedNow }),
		WithLocation(time.UTC),
	)
	return f
}

func ids(views []JobPostView) []uint {
	out := make([]uint, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func TestDashboard_seekerWithoutParamsGetsEverythingDecorated(t *testing.T) {
	f := newFixture(t)

	views, err := f.svc.Dashboard(context.Background(), seeker, RawParams{})

	require.NoError(t, err)
	assert.Equal(t, []uint{f.golang.ID, f.barista.ID, f.intern.ID, f.designer.ID}, ids(views))
	for _, v := range views {
		assert.True(t, v.Decorated)
		assert.False(t, v.Applied)
		assert.False(t, v.Saved)
	}
}

func TestDashboard_recruiterSeesOnlyOwnPosts(t *testing.T) {
	f := newFixture(t)

	views, err := f.svc.Dashboard(context.Background(), recruiterA, RawParams{
		// facets and recency are ignored for a recruiter's own view
		Internship: strPtr("Internship"),
		Days30:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{f.golang.ID, f.barista.ID}, ids(views))
	for _, v := range views {
		assert.False(t, v.Decorated)
		assert.Equal(t, 0, v.DaysSincePosted)
	}
}

func TestDashboard_recruiterKeywordSearchIsOwnerScoped(t *testing.T) {
	f := newFixture(t)

	views, err := f.svc.Dashboard(context.Background(), recruiterA, RawParams{Job: strPtr("golang")})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.golang.ID, f.barista.ID}, ids(views))

	views, err = f.svc.Dashboard(context.Background(), recruiterA, RawParams{Location: strPtr("chiang")})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.barista.ID}, ids(views))

	views, err = f.svc.Dashboard(context.Background(), recruiterB, RawParams{Job: strPtr("golang")})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDashboard_anonymousIsNotDecorated(t *testing.T) {
	f := newFixture(t)

	views, err := f.svc.Dashboard(context.Background(), AnonymousViewer, RawParams{FullTime: strPtr("Full-Time")})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, f.golang.ID, views[0].ID)
	assert.False(t, views[0].Decorated)
}

func TestSearch_emptySpecMatchesUnfilteredPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	spec, unfiltered := Resolve(RawParams{}, fixedNow)
	require.True(t, unfiltered)

	fast, err := f.svc.Search(ctx, AnonymousViewer, spec, true)
	require.NoError(t, err)
	slow, err := f.svc.Search(ctx, AnonymousViewer, spec, false)
	require.NoError(t, err)

	assert.Equal(t, ids(fast), ids(slow))
}

func TestSearch_isIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	spec, unfiltered := Resolve(RawParams{Job: strPtr("a"), Days30: true}, fixedNow)

	first, err := f.svc.Search(ctx, seeker, spec, unfiltered)
	require.NoError(t, err)
	second, err := f.svc.Search(ctx, seeker, spec, unfiltered)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearch_facetsCombineWithOrWithinAndAcross(t *testing.T) {
	f := newFixture(t)

	spec, unfiltered := Resolve(RawParams{
		FullTime:   strPtr("Full-Time"),
		Freelance:  strPtr("Freelance"),
		RemoteOnly: strPtr("Remote-Only"),
	}, fixedNow)
	views, err := f.svc.Search(context.Background(), AnonymousViewer, spec, unfiltered)

	require.NoError(t, err)
	assert.Equal(t, []uint{f.golang.ID, f.designer.ID}, ids(views))
}

func TestSearch_recencyCutoffIsInclusive(t *testing.T) {
	f := newFixture(t)

	spec, unfiltered := Resolve(RawParams{Days7: true}, fixedNow)
	views, err := f.svc.Search(context.Background(), AnonymousViewer, spec, unfiltered)

	require.NoError(t, err)
	assert.Equal(t, []uint{f.golang.ID, f.barista.ID}, ids(views))
}

func TestSearch_unrecognizedFacetMatchesNothing(t *testing.T) {
	f := newFixture(t)

	spec, unfiltered := Resolve(RawParams{PartTime: strPtr("anything")}, fixedNow)
	views, err := f.svc.Search(context.Background(), AnonymousViewer, spec, unfiltered)

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestSearch_decorationFlags(t *testing.T) {
	f := newFixture(t)
	f.activity.apps = []model.Application{{JobSeekerID: seeker.UserID, PostID: f.golang.ID}}
	f.activity.saved = []model.SavedJob{{JobSeekerID: seeker.UserID, PostID: f.barista.ID}}
	// another seeker's history must not leak into this viewer's flags
	f.activity.apps = append(f.activity.apps, model.Application{JobSeekerID: uuid.New(), PostID: f.intern.ID})

	spec, unfiltered := Resolve(RawParams{}, fixedNow)
	views, err := f.svc.Search(context.Background(), seeker, spec, unfiltered)
	require.NoError(t, err)

	applied := map[uint]bool{}
	saved := map[uint]bool{}
	for _, v := range views {
		applied[v.ID] = v.Applied
		saved[v.ID] = v.Saved
	}
	assert.Equal(t, map[uint]bool{f.golang.ID: true, f.barista.ID: false, f.intern.ID: false, f.designer.ID: false}, applied)
	assert.Equal(t, map[uint]bool{f.golang.ID: false, f.barista.ID: true, f.intern.ID: false, f.designer.ID: false}, saved)
}

func TestSearch_daysSincePosted(t *testing.T) {
	f := newFixture(t)

	spec, unfiltered := Resolve(RawParams{}, fixedNow)
	views, err := f.svc.Search(context.Background(), seeker, spec, unfiltered)
	require.NoError(t, err)

	days := map[uint]int{}
	for _, v := range views {
		days[v.ID] = v.DaysSincePosted
	}
	assert.Equal(t, 1, days[f.golang.ID])
	assert.Equal(t, 7, days[f.barista.ID])
	assert.Equal(t, 40, days[f.intern.ID])
	assert.Equal(t, 0, days[f.designer.ID])
}

func TestDaysBetween_countsCalendarDaysInLocation(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	// 23:00 UTC on the 7th is already the 8th in Bangkok
	posted := time.Date(2026, time.March, 7, 23, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 15, 1, 0, 0, 0, bangkok)

	assert.Equal(t, 7, daysBetween(&posted, today, bangkok))
	assert.Equal(t, 0, daysBetween(nil, today, bangkok))
}

func TestGlobalSearch_fillsAgeForEveryViewer(t *testing.T) {
	f := newFixture(t)

	views, err := f.svc.GlobalSearch(context.Background(), recruiterB, RawParams{Days7: true})

	require.NoError(t, err)
	assert.Equal(t, []uint{f.golang.ID, f.barista.ID}, ids(views))
	assert.Equal(t, 1, views[0].DaysSincePosted)
	assert.Equal(t, 7, views[1].DaysSincePosted)
	assert.False(t, views[0].Applied)
}

func TestSearchOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	views, err := f.svc.SearchOnly(ctx, AnonymousViewer, "  ", "")
	require.NoError(t, err)
	assert.Len(t, views, 4)

	views, err = f.svc.SearchOnly(ctx, AnonymousViewer, "GOLANG", "bangkok")
	require.NoError(t, err)
	assert.Equal(t, []uint{f.golang.ID}, ids(views))
}

func TestGetOne(t *testing.T) {
	f := newFixture(t)
	f.activity.saved = []model.SavedJob{{JobSeekerID: seeker.UserID, PostID: f.intern.ID}}

	view, err := f.svc.GetOne(context.Background(), seeker, f.intern.ID)
	require.NoError(t, err)
	assert.Equal(t, "Data Intern", view.Title)
	assert.True(t, view.Saved)

	_, err = f.svc.GetOne(context.Background(), seeker, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecruiterJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summaries, err := f.svc.RecruiterJobs(ctx, recruiterB)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, f.intern.ID, summaries[0].JobPostID)

	_, err = f.svc.RecruiterJobs(ctx, AnonymousViewer)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = f.svc.RecruiterJobs(ctx, seeker)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func validForm() model.EditableJobPostInfo {
	return model.EditableJobPostInfo{
		Title:   "Site Reliability Engineer",
		JobType: model.JobTypeFullTime,
		Remote:  model.WorkModePartialRemote,
		Salary:  "90000",
	}
}

func TestUpdateFromForm_ownerOverwritesEditableFields(t *testing.T) {
	f := newFixture(t)
	form := validForm()
	form.JobLocationID = uintPtr(2)

	updated, err := f.svc.UpdateFromForm(context.Background(), recruiterA, f.golang.ID, form)

	require.NoError(t, err)
	assert.Equal(t, form.Title, updated.Title)
	assert.Equal(t, "Chiang Mai", updated.JobLocation.City)
	assert.Equal(t, recruiterA.UserID, updated.PostedByID)
	assert.Equal(t, f.golang.PostedDate, updated.PostedDate)
	assert.Nil(t, updated.JobCompanyID)
}

func TestUpdateFromForm_nonOwnerLeavesPostUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before, err := f.jobs.FindByID(ctx, f.golang.ID)
	require.NoError(t, err)

	for _, v := range []Viewer{recruiterB, seeker, admin} {
		_, err = f.svc.UpdateFromForm(ctx, v, f.golang.ID, validForm())
		assert.ErrorIs(t, err, ErrPermissionDenied, "viewer %s", v.Kind)
	}

	after, err := f.jobs.FindByID(ctx, f.golang.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateFromForm_checkOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bad := model.EditableJobPostInfo{JobType: "Volunteer"}

	_, err := f.svc.UpdateFromForm(ctx, AnonymousViewer, 999, bad)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.svc.UpdateFromForm(ctx, recruiterA, 999, bad)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateFromForm(ctx, recruiterB, f.golang.ID, bad)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.svc.UpdateFromForm(ctx, recruiterA, f.golang.ID, bad)
	assert.ErrorIs(t, err, ErrValidation)
	post, _ := f.jobs.FindByID(ctx, f.golang.ID)
	assert.Equal(t, "Golang Developer", post.Title)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.Delete(ctx, recruiterB, f.golang.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = f.jobs.FindByID(ctx, f.golang.ID)
	assert.NoError(t, err)

	err = f.svc.Delete(ctx, AnonymousViewer, f.golang.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	require.NoError(t, f.svc.Delete(ctx, recruiterA, f.golang.ID))
	_, err = f.jobs.FindByID(ctx, f.golang.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.svc.Delete(ctx, recruiterA, f.golang.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddNew_stampsOwnerAndDate(t *testing.T) {
	f := newFixture(t)
	post := &model.JobPost{
		PostedByID:          recruiterB.UserID,
		EditableJobPostInfo: validForm(),
	}

	created, err := f.svc.AddNew(context.Background(), recruiterA, post, nil)

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, recruiterA.UserID, created.PostedByID)
	require.NotNil(t, created.PostedDate)
	assert.True(t, fixedNow.Equal(*created.PostedDate))

	views, err := f.svc.Dashboard(context.Background(), recruiterA, RawParams{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, views[0].ID)
}

func TestAddNew_keepsGivenDate(t *testing.T) {
	f := newFixture(t)
	post := &model.JobPost{PostedDate: daysAgo(3, 8), EditableJobPostInfo: validForm()}

	created, err := f.svc.AddNew(context.Background(), recruiterA, post, nil)

	require.NoError(t, err)
	assert.Equal(t, daysAgo(3, 8), created.PostedDate)
}

func TestAddNew_rejectsNonRecruiters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddNew(ctx, AnonymousViewer, &model.JobPost{EditableJobPostInfo: validForm()}, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.svc.AddNew(ctx, seeker, &model.JobPost{EditableJobPostInfo: validForm()}, nil)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.svc.AddNew(ctx, recruiterA, &model.JobPost{}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddNew_savesLogo(t *testing.T) {
	f := newFixture(t)
	form := validForm()
	form.JobCompanyID = uintPtr(1)
	logo := &LogoUpload{Filename: "../../etc/logo.png", Content: strings.NewReader("png-bytes")}

	created, err := f.svc.AddNew(context.Background(), recruiterA, &model.JobPost{EditableJobPostInfo: form}, logo)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), f.files.files["company/1/logo.png"])
	assert.Equal(t, "logo.png", f.jobs.companies[1].Logo)
	assert.NotZero(t, created.ID)
}

func TestAddNew_logoFailureKeepsPost(t *testing.T) {
	f := newFixture(t)
	f.files.failWith = errDiskFull
	form := validForm()
	form.JobCompanyID = uintPtr(1)
	logo := &LogoUpload{Filename: "logo.png", Content: strings.NewReader("png")}

	created, err := f.svc.AddNew(context.Background(), recruiterA, &model.JobPost{EditableJobPostInfo: form}, logo)

	assert.ErrorIs(t, err, ErrStorage)
	require.NotNil(t, created)
	stored, findErr := f.jobs.FindByID(context.Background(), created.ID)
	require.NoError(t, findErr)
	assert.Empty(t, stored.JobCompany.Logo)
}

func TestApplyAndSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.svc.Apply(ctx, seeker, f.barista.ID, "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", app.CoverLetter)
	assert.Equal(t, seeker.UserID, app.JobSeekerID)

	_, err = f.svc.Apply(ctx, seeker, f.barista.ID, "again")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.svc.Apply(ctx, recruiterA, f.barista.ID, "")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.svc.Save(ctx, seeker, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Save(ctx, seeker, f.intern.ID)
	require.NoError(t, err)

	view, err := f.svc.GetOne(ctx, seeker, f.barista.ID)
	require.NoError(t, err)
	assert.True(t, view.Applied)
	assert.False(t, view.Saved)
}

func TestService_storeFailureIsStorageError(t *testing.T) {
	f := newFixture(t)
	f.jobs.failWith = errDiskFull

	_, err := f.svc.Dashboard(context.Background(), seeker, RawParams{})

	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, 500, HTTPStatus(err))
}
