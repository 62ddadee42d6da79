package jobpost

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/repository"
	"jobportal-backend/internal/storage"
	"jobportal-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	auth.SetSecretKey("jobpost-controller-secret")

	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

// newRouter wires the controller the same way the server does, with logos written under root
func newRouter(t *testing.T, root string) *gin.Engine {
	t.Helper()
	svc := jobpost.NewService(
		repository.NewJobPostRepository(testDB),
		repository.NewActivityRepository(testDB),
		storage.NewLocalStorage(root),
		nil,
	)
	jc := NewJobPostController(svc)

	r := gin.New()
	optional := middleware.OptionalAuth(testDB, nil)
	required := middleware.RequireAuth(testDB)
	r.GET("/dashboard", optional, jc.Dashboard)
	r.GET("/global-search", optional, jc.GlobalSearch)
	r.GET("/jobpost/search", optional, jc.SearchOnly)
	r.GET("/jobpost/:id", optional, jc.GetPostByID)
	r.POST("/jobpost", required, jc.CreateJobPostHandler)
	r.PATCH("/jobpost/:id", required, jc.EditJobPost)
	r.DELETE("/jobpost/:id", required, jc.DeleteJobPost)
	r.GET("/recruiter/jobs", required, jc.RecruiterJobs)
	return r
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return tok
}

func ids(list []map[string]interface{}) []uint {
	out := make([]uint, 0, len(list))
	for _, item := range list {
		out = append(out, uint(item["id"].(float64)))
	}
	return out
}

// extraPost inserts a post owned by recruiter 1 that only this test touches
func extraPost(t *testing.T, title string) model.JobPost {
	t.Helper()
	posted := time.Now().AddDate(-1, 0, 0)
	post := model.JobPost{
		PostedByID: database.TestUserRecruiter1.ID,
		PostedDate: &posted,
		EditableJobPostInfo: model.EditableJobPostInfo{
			Title:   title,
			JobType: model.JobTypeFreelance,
			Remote:  model.WorkModeRemoteOnly,
		},
	}
	require.NoError(t, testDB.Create(&post).Error)
	t.Cleanup(func() { testDB.Delete(&model.JobPost{}, post.ID) })
	return post
}

func TestDashboard_anonymousSeesEverythingNewestFirst(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/dashboard", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	list := testutil.DecodeList(rec)
	assert.Equal(t, []uint{database.TestJobPost1.ID, database.TestJobPost2.ID, database.TestJobPost3.ID}, ids(list))
	assert.Equal(t, false, list[0]["decorated"])
}

func TestDashboard_recruiterSeesOnlyOwnPosts(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserRecruiter2), r, "/dashboard?fullTime=Full-Time", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{database.TestJobPost3.ID}, ids(testutil.DecodeList(rec)))
}

func TestDashboard_recruiterKeyword(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserRecruiter1), r, "/dashboard?job=react", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{database.TestJobPost2.ID}, ids(testutil.DecodeList(rec)))
}

func TestDashboard_seekerFacetsAreDecorated(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserSeeker1), r, "/dashboard?fullTime=Full-Time&days7=true", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	list := testutil.DecodeList(rec)
	require.Len(t, list, 1)
	assert.Equal(t, float64(database.TestJobPost1.ID), list[0]["id"])
	assert.Equal(t, true, list[0]["decorated"])
	assert.Equal(t, float64(1), list[0]["days_since_posted"])
}

func TestDashboard_unrecognizedMarkerMatchesNothing(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/dashboard?partTime=yes", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestDashboard_invalidRecencyFlagIsIgnored(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/dashboard?today=maybe", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, testutil.DecodeList(rec), 3)
}

func TestDashboard_checkboxRecencyFlag(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/dashboard?days7=on", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{database.TestJobPost1.ID}, ids(testutil.DecodeList(rec)))
}

func TestGlobalSearch_workModeValues(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/global-search?remoteOnly=Remote-Only&officeOnly=Office-Only", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{database.TestJobPost1.ID, database.TestJobPost2.ID}, ids(testutil.DecodeList(rec)))
}

func TestGlobalSearch_recruiterSeesAllWithAge(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserRecruiter2), r, "/global-search?location=bangkok", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	list := testutil.DecodeList(rec)
	assert.Equal(t, []uint{database.TestJobPost1.ID, database.TestJobPost3.ID}, ids(list))
	assert.Equal(t, float64(40), list[1]["days_since_posted"])
	assert.Equal(t, false, list[1]["decorated"])
}

func TestSearchOnly(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/jobpost/search?job=DATA&location=thailand", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{database.TestJobPost1.ID, database.TestJobPost3.ID}, ids(testutil.DecodeList(rec)))
}

func TestGetPostByID_success(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestUserSeeker1), r, fmt.Sprintf("/jobpost/%d", database.TestJobPost1.ID), http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(database.TestJobPost1.ID), resp["id"])
	assert.Equal(t, database.TestJobPost1.Title, resp["title"])
	assert.Equal(t, true, resp["decorated"])
	assert.Equal(t, "Bangkok", resp["job_location"].(map[string]interface{})["city"])
}

func TestGetPostByID_notFound(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/jobpost/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/jobpost/abc", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateJobPost_withLogo(t *testing.T) {
	root := t.TempDir()
	r := newRouter(t, root)

	fields := map[string]string{
		"title":           "Platform Engineer",
		"job_type":        string(model.JobTypeFullTime),
		"remote":          string(model.WorkModePartialRemote),
		"description":     "Kubernetes and Go",
		"job_location_id": fmt.Sprint(database.TestLocationChiangMai.ID),
		"job_company_id":  fmt.Sprint(database.TestCompany2.ID),
	}
	file := &testutil.FormFile{Field: "companyLogo", Filename: "../../dataforge.png", Content: []byte("png-bytes")}

	rec, resp := testutil.MakeMultipartRequest(fields, file, token(t, database.TestUserRecruiter2), r, "/jobpost", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := uint(resp["id"].(float64))
	t.Cleanup(func() { testDB.Delete(&model.JobPost{}, id) })

	assert.Equal(t, database.TestUserRecruiter2.ID.String(), resp["posted_by_id"])
	assert.NotNil(t, resp["posted_date"])

	content, err := os.ReadFile(filepath.Join(root, "company", fmt.Sprint(database.TestCompany2.ID), "dataforge.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	var company model.JobCompany
	require.NoError(t, testDB.First(&company, database.TestCompany2.ID).Error)
	assert.Equal(t, "dataforge.png", company.Logo)
}

func TestCreateJobPost_withoutLogo(t *testing.T) {
	r := newRouter(t, t.TempDir())

	fields := map[string]string{
		"title":    "QA Tester",
		"job_type": string(model.JobTypePartTime),
		"remote":   string(model.WorkModeOfficeOnly),
	}
	rec, resp := testutil.MakeMultipartRequest(fields, nil, token(t, database.TestUserRecruiter1), r, "/jobpost", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := uint(resp["id"].(float64))
	t.Cleanup(func() { testDB.Delete(&model.JobPost{}, id) })
	assert.Equal(t, "QA Tester", resp["title"])
}

func TestCreateJobPost_rejected(t *testing.T) {
	r := newRouter(t, t.TempDir())
	valid := map[string]string{
		"title":    "Anything",
		"job_type": string(model.JobTypePartTime),
		"remote":   string(model.WorkModeOfficeOnly),
	}

	t.Run("JobSeeker", func(t *testing.T) {
		rec, _ := testutil.MakeMultipartRequest(valid, nil, token(t, database.TestUserSeeker1), r, "/jobpost", http.MethodPost)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("InvalidJobType", func(t *testing.T) {
		fields := map[string]string{"title": "Anything", "job_type": "Gig", "remote": string(model.WorkModeOfficeOnly)}
		rec, _ := testutil.MakeMultipartRequest(fields, nil, token(t, database.TestUserRecruiter1), r, "/jobpost", http.MethodPost)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownLocation", func(t *testing.T) {
		fields := map[string]string{"title": "Anything", "job_type": "Internship", "remote": "Remote-Only", "job_location_id": "999999"}
		rec, _ := testutil.MakeMultipartRequest(fields, nil, token(t, database.TestUserRecruiter1), r, "/jobpost", http.MethodPost)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NoToken", func(t *testing.T) {
		rec, _ := testutil.MakeMultipartRequest(valid, nil, "", r, "/jobpost", http.MethodPost)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEditJobPost(t *testing.T) {
	r := newRouter(t, t.TempDir())
	post := extraPost(t, "Editable")
	path := fmt.Sprintf("/jobpost/%d", post.ID)

	form := gin.H{
		"title":    "Edited title",
		"job_type": string(model.JobTypeInternship),
		"remote":   string(model.WorkModeOfficeOnly),
		"salary":   "",
	}

	t.Run("OtherRecruiter", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(form, token(t, database.TestUserRecruiter2), r, path, http.MethodPatch)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("UnknownField", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(gin.H{"posted_by_id": "x"}, token(t, database.TestUserRecruiter1), r, path, http.MethodPatch)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidForm", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(gin.H{"title": "", "job_type": "Full-Time", "remote": "Remote-Only"}, token(t, database.TestUserRecruiter1), r, path, http.MethodPatch)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(form, token(t, database.TestUserRecruiter1), r, "/jobpost/999999", http.MethodPatch)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Owner", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(form, token(t, database.TestUserRecruiter1), r, path, http.MethodPatch)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Edited title", resp["title"])
		assert.Equal(t, string(model.JobTypeInternship), resp["job_type"])
		assert.Equal(t, database.TestUserRecruiter1.ID.String(), resp["posted_by_id"])
	})
}

func TestDeleteJobPost(t *testing.T) {
	r := newRouter(t, t.TempDir())
	post := extraPost(t, "Short lived")
	path := fmt.Sprintf("/jobpost/%d", post.ID)

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserRecruiter2), r, path, http.MethodDelete)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, token(t, database.TestUserRecruiter1), r, path, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp["message"], "deleted")

	rec, _ = testutil.MakeJSONRequest(nil, "", r, path, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecruiterJobs(t *testing.T) {
	r := newRouter(t, t.TempDir())

	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUserRecruiter1), r, "/recruiter/jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	list := testutil.DecodeList(rec)
	require.Len(t, list, 2)
	assert.Equal(t, float64(database.TestJobPost1.ID), list[0]["job_post_id"])
	assert.Contains(t, list[0], "total_candidates")

	rec, _ = testutil.MakeJSONRequest(nil, token(t, database.TestUserSeeker1), r, "/recruiter/jobs", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
