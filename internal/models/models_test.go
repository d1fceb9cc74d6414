package models

import "testing"

func TestSetSlugDerivesURLs(t *testing.T) {
	var company Company
	company.SetSlug("openai")

	if company.CompanyURL != "https://wellfound.com/company/openai" {
		t.Fatalf("CompanyURL = %q, want profile URL", company.CompanyURL)
	}
	if company.JobsURL != "https://wellfound.com/company/openai/jobs" {
		t.Fatalf("JobsURL = %q, want jobs URL", company.JobsURL)
	}
}

func TestSetSlugEmptyLeavesURLsBlank(t *testing.T) {
	var company Company
	company.SetSlug("")

	if company.CompanyURL != "" || company.JobsURL != "" {
		t.Fatalf("empty slug derived URLs: %q, %q", company.CompanyURL, company.JobsURL)
	}
}

func TestSlugFromJobsURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "jobs url", url: "https://wellfound.com/company/openai/jobs", want: "openai"},
		{name: "profile url", url: "https://wellfound.com/company/openai", want: "openai"},
		{name: "no company segment", url: "https://wellfound.com/startups?page=2", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlugFromJobsURL(tt.url); got != tt.want {
				t.Fatalf("SlugFromJobsURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSetLocationDerivesRemoteFlag(t *testing.T) {
	var job Job
	job.SetLocation("Remote / San Francisco")
	if job.RemoteOK == nil || !*job.RemoteOK {
		t.Fatalf("RemoteOK = %v, want true", job.RemoteOK)
	}

	job = Job{}
	job.SetLocation("New York")
	if job.RemoteOK == nil || *job.RemoteOK {
		t.Fatalf("RemoteOK = %v, want false", job.RemoteOK)
	}

	job = Job{}
	job.SetLocation("")
	if job.RemoteOK != nil {
		t.Fatalf("RemoteOK = %v, want nil for unknown location", job.RemoteOK)
	}
}

func TestApplyURLFor(t *testing.T) {
	got := ApplyURLFor("openai", "12345")
	want := "https://wellfound.com/company/openai/jobs/12345"
	if got != want {
		t.Fatalf("ApplyURLFor() = %q, want %q", got, want)
	}

	if got := ApplyURLFor("", "12345"); got != "" {
		t.Fatalf("ApplyURLFor without slug = %q, want empty", got)
	}
	if got := ApplyURLFor("openai", ""); got != "" {
		t.Fatalf("ApplyURLFor without id = %q, want empty", got)
	}
}
