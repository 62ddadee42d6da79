package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"jobportal-backend/internal/config"
	m "jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & profiles
var (
	TestAdminUser      m.User
	TestUserRecruiter1 m.User
	TestUserRecruiter2 m.User
	TestUserSeeker1    m.User
	TestUserSeeker2    m.User
	TestRecruiter1     m.RecruiterProfile
	TestRecruiter2     m.RecruiterProfile
	TestSeeker1        m.JobSeekerProfile
	TestSeeker2        m.JobSeekerProfile

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	TestLocationBangkok   m.JobLocation
	TestLocationChiangMai m.JobLocation
	TestCompany1          m.JobCompany
	TestCompany2          m.JobCompany

	// Exported seeded job posts, newest first
	TestJobPost1 m.JobPost
	TestJobPost2 m.JobPost
	TestJobPost3 m.JobPost
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	cfg := &config.DatabaseConfig{
		UseConnString: true,
		ConnString:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(cfg, nil)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two recruiters, two job seekers, an admin and three job posts.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return loadTestData(db)
	}

	emails := []*string{ptr("recruiter1@example.com"), ptr("recruiter2@example.com"), ptr("seeker1@example.com"), ptr("seeker2@example.com"), ptr("admin@example.com")}
	userSpecs := []struct {
		username string
		email    *string
		role     string
	}{
		{"recruiter_1", emails[0], m.RoleRecruiter},
		{"recruiter_2", emails[1], m.RoleRecruiter},
		{"seeker_1", emails[2], m.RoleJobSeeker},
		{"seeker_2", emails[3], m.RoleJobSeeker},
		{"admin_user", emails[4], m.RoleAdmin},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:       uuid.New(),
			Username: s.username,
			Email:    s.email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}
	assignUsers(users)

	recruiters := []m.RecruiterProfile{
		{UserID: TestUserRecruiter1.ID, FirstName: "Alice", LastName: "Nguyen", CompanyName: "TechNova"},
		{UserID: TestUserRecruiter2.ID, FirstName: "Bob", LastName: "Somsak", CompanyName: "DataForge"},
	}
	if err := db.Create(&recruiters).Error; err != nil {
		return err
	}
	TestRecruiter1, TestRecruiter2 = recruiters[0], recruiters[1]

	seekers := []m.JobSeekerProfile{
		{UserID: TestUserSeeker1.ID, FirstName: "Chai", LastName: "Wong", Skills: pq.StringArray{"go", "sql"}},
		{UserID: TestUserSeeker2.ID, FirstName: "Dao", LastName: "Srisuk", Skills: pq.StringArray{"design"}},
	}
	if err := db.Create(&seekers).Error; err != nil {
		return err
	}
	TestSeeker1, TestSeeker2 = seekers[0], seekers[1]

	locations := []m.JobLocation{
		{City: "Bangkok", State: "Bangkok", Country: "Thailand"},
		{City: "Chiang Mai", State: "Chiang Mai", Country: "Thailand"},
	}
	if err := db.Create(&locations).Error; err != nil {
		return err
	}
	TestLocationBangkok, TestLocationChiangMai = locations[0], locations[1]

	companies := []m.JobCompany{{Name: "TechNova"}, {Name: "DataForge"}}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}
	TestCompany1, TestCompany2 = companies[0], companies[1]

	now := time.Now()
	jobPosts := []m.JobPost{
		{
			PostedByID: TestUserRecruiter1.ID,
			PostedDate: ptr(now.AddDate(0, 0, -1)),
			EditableJobPostInfo: m.EditableJobPostInfo{
				Title:         "Backend Engineer",
				Description:   "Work on Go microservices and database layers.",
				JobType:       m.JobTypeFullTime,
				Remote:        m.WorkModeRemoteOnly,
				Salary:        "60000 THB",
				JobLocationID: &TestLocationBangkok.ID,
				JobCompanyID:  &TestCompany1.ID,
				Field:         "Software",
				Number:        "2",
			},
		},
		{
			PostedByID: TestUserRecruiter1.ID,
			PostedDate: ptr(now.AddDate(0, 0, -10)),
			EditableJobPostInfo: m.EditableJobPostInfo{
				Title:         "Frontend Developer Intern",
				Description:   "Assist building component library in React.",
				JobType:       m.JobTypeInternship,
				Remote:        m.WorkModeOfficeOnly,
				Salary:        "12000 THB",
				JobLocationID: &TestLocationChiangMai.ID,
				JobCompanyID:  &TestCompany1.ID,
				Field:         "Software",
				Number:        "1",
			},
		},
		{
			PostedByID: TestUserRecruiter2.ID,
			PostedDate: ptr(now.AddDate(0, 0, -40)),
			EditableJobPostInfo: m.EditableJobPostInfo{
				Title:         "Data Analyst",
				Description:   "Support data cleansing and dashboard creation.",
				JobType:       m.JobTypePartTime,
				Remote:        m.WorkModePartialRemote,
				Salary:        "30000 THB",
				JobLocationID: &TestLocationBangkok.ID,
				JobCompanyID:  &TestCompany2.ID,
				Field:         "Analytics",
				Number:        "1",
			},
		},
	}

	if err := db.Create(&jobPosts).Error; err != nil {
		return err
	}
	TestJobPost1, TestJobPost2, TestJobPost3 = jobPosts[0], jobPosts[1], jobPosts[2]

	return nil
}

func assignUsers(users []m.User) {
	for _, u := range users {
		switch u.Username {
		case "recruiter_1":
			TestUserRecruiter1 = u
		case "recruiter_2":
			TestUserRecruiter2 = u
		case "seeker_1":
			TestUserSeeker1 = u
		case "seeker_2":
			TestUserSeeker2 = u
		case "admin_user":
			TestAdminUser = u
		}
	}
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"recruiter_1", "recruiter_2", "seeker_1", "seeker_2", "admin_user",
	}).Find(&users).Error; err != nil {
		return err
	}
	assignUsers(users)

	_ = db.First(&TestRecruiter1, "user_id = ?", TestUserRecruiter1.ID).Error
	_ = db.First(&TestRecruiter2, "user_id = ?", TestUserRecruiter2.ID).Error
	_ = db.First(&TestSeeker1, "user_id = ?", TestUserSeeker1.ID).Error
	_ = db.First(&TestSeeker2, "user_id = ?", TestUserSeeker2.ID).Error

	_ = db.First(&TestLocationBangkok, "city = ?", "Bangkok").Error
	_ = db.First(&TestLocationChiangMai, "city = ?", "Chiang Mai").Error
	_ = db.First(&TestCompany1, "name = ?", "TechNova").Error
	_ = db.First(&TestCompany2, "name = ?", "DataForge").Error

	// Load first three job posts deterministically
	var posts []m.JobPost
	if err := db.Order("id ASC").Limit(3).Find(&posts).Error; err == nil {
		if len(posts) > 0 {
			TestJobPost1 = posts[0]
		}
		if len(posts) > 1 {
			TestJobPost2 = posts[1]
		}
		if len(posts) > 2 {
			TestJobPost3 = posts[2]
		}
	}

	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }
