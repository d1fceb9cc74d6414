package quality

import (
	"reflect"
	"testing"
	"time"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
)

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{70, "C"},
		{60, "D"},
		{59.99, "F"},
		{53.33, "F"},
		{0, "F"},
	}

	for _, tc := range cases {
		if got := GradeFor(tc.value); got != tc.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestScoreJobCountsFilledFields(t *testing.T) {
	// 12 of the 15 checklist fields filled: missing benefits, industries,
	// funding. 12/15 = 80.0 → B.
	min, max := 90000, 140000
	remote := true
	posted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	job := &models.Job{
		Title:           "Backend Engineer",
		Description:     "Build the ingestion pipeline.",
		Location:        "San Francisco",
		JobType:         "full-time",
		ApplyURL:        "https://wellfound.com/company/acme/jobs/1",
		CompanyName:     "Acme",
		SalaryMin:       &min,
		SalaryMax:       &max,
		Skills:          []string{"go", "postgres"},
		ExperienceLevel: "senior",
		PostedDate:      &posted,
		CompanySize:     "11-50",
		RemoteOK:        &remote,
	}

	score := ScoreJob(job)
	if score.Value != 80.0 {
		t.Fatalf("score = %v, want 80.0", score.Value)
	}
	if score.Grade != "B" {
		t.Fatalf("grade = %s, want B", score.Grade)
	}
}

func TestScoreJobThresholds(t *testing.T) {
	cases := []struct {
		filledFields int
		wantValue    float64
		wantGrade    string
	}{
		{15, 100.0, "A"},
		{12, 80.0, "B"},
		{11, 73.33, "C"},
		{9, 60.0, "D"},
		{8, 53.33, "F"},
		{1, 6.67, "F"},
	}

	for _, tc := range cases {
		job := jobWithFilled(tc.filledFields)
		score := ScoreJob(job)
		if score.Value != tc.wantValue {
			t.Errorf("%d/15 fields: score = %v, want %v", tc.filledFields, score.Value, tc.wantValue)
		}
		if score.Grade != tc.wantGrade {
			t.Errorf("%d/15 fields: grade = %s, want %s", tc.filledFields, score.Grade, tc.wantGrade)
		}
	}
}

func TestScoreJobDeterministicAndPure(t *testing.T) {
	job := jobWithFilled(11)
	before := *job

	first := ScoreJob(job)
	second := ScoreJob(job)
	if first != second {
		t.Fatalf("scores differ: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(*job, before) {
		t.Fatal("ScoreJob mutated the record")
	}
}

func TestSalaryCountsAsOneField(t *testing.T) {
	min := 100000
	withMin := ScoreJob(&models.Job{Title: "x", SalaryMin: &min})
	withText := ScoreJob(&models.Job{Title: "x", SalaryText: "$100k+"})
	withBoth := ScoreJob(&models.Job{Title: "x", SalaryMin: &min, SalaryText: "$100k+"})

	if withMin != withText || withMin != withBoth {
		t.Fatalf("salary variants should score identically: %v %v %v", withMin, withText, withBoth)
	}
}

func TestScoreCompany(t *testing.T) {
	total := 4
	founded := 2019
	company := &models.Company{
		Name:        "Acme",
		Slug:        "acme",
		Headline:    "Robotics for warehouses",
		Location:    "Austin",
		CompanySize: "51-200",
		Website:     "https://acme.example",
		Funding:     "Series B",
		Industries:  []string{"robotics"},
		FoundedYear: &founded,
		TotalJobs:   &total,
	}

	score := ScoreCompany(company)
	if score.Value != 100.0 || score.Grade != "A" {
		t.Fatalf("full company should score 100/A, got %+v", score)
	}

	sparse := ScoreCompany(&models.Company{Name: "Acme"})
	if sparse.Value != 10.0 || sparse.Grade != "F" {
		t.Fatalf("name-only company should score 10/F, got %+v", sparse)
	}
}

// jobWithFilled builds a job whose first n checklist fields are present,
// in checklist order.
func jobWithFilled(n int) *models.Job {
	min := 100000
	remote := false
	posted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	fillers := []func(*models.Job){
		func(j *models.Job) { j.Title = "Engineer" },
		func(j *models.Job) { j.Description = "desc" },
		func(j *models.Job) { j.Location = "NYC" },
		func(j *models.Job) { j.JobType = "full-time" },
		func(j *models.Job) { j.ApplyURL = "https://example.com/apply" },
		func(j *models.Job) { j.CompanyName = "Acme" },
		func(j *models.Job) { j.SalaryMin = &min },
		func(j *models.Job) { j.Skills = []string{"go"} },
		func(j *models.Job) { j.ExperienceLevel = "mid" },
		func(j *models.Job) { j.PostedDate = &posted },
		func(j *models.Job) { j.CompanySize = "11-50" },
		func(j *models.Job) { j.RemoteOK = &remote },
		func(j *models.Job) { j.Benefits = []string{"401k"} },
		func(j *models.Job) { j.CompanyIndustries = []string{"saas"} },
		func(j *models.Job) { j.CompanyFunding = "Seed" },
	}

	job := &models.Job{}
	for i := 0; i < n && i < len(fillers); i++ {
		fillers[i](job)
	}
	return job
}
