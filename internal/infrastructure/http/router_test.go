package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mubarek-tria/CIEt/internal/application/activity"
	"github.com/mubarek-tria/CIEt/internal/application/caregiver"
	"github.com/mubarek-tria/CIEt/internal/application/dashboard"
	"github.com/mubarek-tria/CIEt/internal/application/fund"
	"github.com/mubarek-tria/CIEt/internal/application/project"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/http/handlers"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/ident"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/persistence/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := zerolog.Nop()
	projects := memory.NewProjectStore()
	caregivers := memory.NewCaregiverStore()
	funds := memory.NewFundStore()
	activities := memory.NewActivityStore()
	idGen := ident.NewGenerator()

	return NewRouter(RouterConfig{
		HealthHandler: handlers.NewHealthHandler(),
		ProjectHandler: handlers.NewProjectHandler(
			project.NewCreateProject(projects, idGen, "https://portal.ciet.example"),
			project.NewListProjects(projects),
			project.NewSetProjectStatus(projects),
			log,
		),
		CaregiverHandler: handlers.NewCaregiverHandler(
			caregiver.NewEnrollCaregiver(projects, caregivers, idGen),
			caregiver.NewListCaregivers(caregivers),
			log,
		),
		FundHandler: handlers.NewFundHandler(
			fund.NewAllocateFund(projects, caregivers, funds, idGen, "ETB"),
			fund.NewListFunds(funds),
			log,
		),
		ActivityHandler: handlers.NewActivityHandler(
			activity.NewReportActivity(projects, caregivers, activities, idGen),
			activity.NewListActivities(activities),
			log,
		),
		DashboardHandler: handlers.NewDashboardHandler(
			dashboard.NewSummarize(projects, caregivers),
			log,
		),
		Log: log,
	})
}

func do(t *testing.T, h http.Handler, method, path, role, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: got %d, want 200", rec.Code)
	}
	var body map[string]bool
	decode(t, rec, &body)
	if !body["ok"] {
		t.Fatalf("health body = %s", rec.Body.String())
	}
}

func TestRoleGateOnEveryOperation(t *testing.T) {
	h := newTestRouter(t)
	cases := []struct {
		method, path, role string
	}{
		{http.MethodPost, "/api/projects", "employee"},
		{http.MethodPost, "/api/projects", "director"},
		{http.MethodPost, "/api/projects", ""},
		{http.MethodPatch, "/api/projects/x/status", "employee"},
		{http.MethodGet, "/api/projects", "guest"},
		{http.MethodPost, "/api/caregivers", "admin"},
		{http.MethodGet, "/api/caregivers", ""},
		{http.MethodPost, "/api/funds", "admin"},
		{http.MethodPost, "/api/activities", "admin"},
		{http.MethodGet, "/api/dashboard/summary", "director"},
	}
	for _, tc := range cases {
		rec := do(t, h, tc.method, tc.path, tc.role, `{"name":"x"}`)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s as %q: got %d, want 403", tc.method, tc.path, tc.role, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Forbidden: insufficient role") {
			t.Errorf("%s %s: body %q missing denial message", tc.method, tc.path, rec.Body.String())
		}
	}
}

// Walks the whole sponsorship flow end to end: project creation, duplicate
// code rejection, enrollment, allocation, deactivation, and the dashboard.
func TestSponsorshipFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/projects", "admin", `{"name":"Alpha","code":"ALP"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project: got %d (%s)", rec.Code, rec.Body.String())
	}
	var proj struct {
		ID          string `json:"id"`
		Active      bool   `json:"active"`
		SiteURL     string `json:"siteUrl"`
		Credentials struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"credentials"`
	}
	decode(t, rec, &proj)
	if !proj.Active {
		t.Error("new project should be active")
	}
	if !strings.HasSuffix(proj.SiteURL, "/ALP") {
		t.Errorf("siteUrl = %q, want suffix /ALP", proj.SiteURL)
	}
	if proj.Credentials.Username != "alp_admin" || proj.Credentials.Password == "" {
		t.Errorf("credentials = %+v", proj.Credentials)
	}

	rec = do(t, h, http.MethodPost, "/api/projects", "admin", `{"name":"Alpha Two","code":"ALP"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate code: got %d, want 409", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/api/caregivers", "director",
		fmt.Sprintf(`{"fullName":"Jane","projectId":%q,"address":{"subcity":"Bole"}}`, proj.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("enroll caregiver: got %d (%s)", rec.Code, rec.Body.String())
	}
	var cg struct {
		ID       string `json:"id"`
		UniqueID string `json:"uniqueId"`
		Address  struct {
			Zone *string `json:"zone"`
		} `json:"address"`
	}
	decode(t, rec, &cg)
	if !regexp.MustCompile(`^CG-[A-Z0-9]{6}$`).MatchString(cg.UniqueID) {
		t.Errorf("uniqueId = %q", cg.UniqueID)
	}
	if cg.Address.Zone == nil || *cg.Address.Zone != "Bole" {
		t.Errorf("subcity alias not applied: %+v", cg.Address)
	}

	rec = do(t, h, http.MethodPost, "/api/funds", "employee",
		fmt.Sprintf(`{"projectId":%q,"caregiverId":%q,"amount":100}`, proj.ID, cg.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("allocate fund: got %d (%s)", rec.Code, rec.Body.String())
	}
	var fundResp struct {
		Currency    string `json:"currency"`
		AllocatedAt string `json:"allocatedAt"`
	}
	decode(t, rec, &fundResp)
	if fundResp.Currency != "ETB" {
		t.Errorf("currency = %q, want ETB", fundResp.Currency)
	}
	if fundResp.AllocatedAt == "" {
		t.Error("allocatedAt missing")
	}

	rec = do(t, h, http.MethodPatch, "/api/projects/"+proj.ID+"/status", "admin", `{"active":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set status: got %d (%s)", rec.Code, rec.Body.String())
	}
	var status struct {
		ID     string `json:"id"`
		Active bool   `json:"active"`
	}
	decode(t, rec, &status)
	if status.ID != proj.ID || status.Active {
		t.Errorf("status response = %+v", status)
	}

	rec = do(t, h, http.MethodPost, "/api/funds", "employee",
		fmt.Sprintf(`{"projectId":%q,"caregiverId":%q,"amount":100}`, proj.ID, cg.ID))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("fund to inactive project: got %d, want 403", rec.Code)
	}

	// Activity reporting still works against the now-inactive project.
	rec = do(t, h, http.MethodPost, "/api/activities", "director",
		fmt.Sprintf(`{"projectId":%q,"caregiverId":%q,"title":"School supplies"}`, proj.ID, cg.ID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("report activity: got %d (%s)", rec.Code, rec.Body.String())
	}
	var act struct {
		Status       string   `json:"status"`
		EvidenceURLs []string `json:"evidenceUrls"`
	}
	decode(t, rec, &act)
	if act.Status != "Submitted" {
		t.Errorf("activity status = %q, want Submitted", act.Status)
	}
	if act.EvidenceURLs == nil || len(act.EvidenceURLs) != 0 {
		t.Errorf("evidenceUrls = %#v, want []", act.EvidenceURLs)
	}

	rec = do(t, h, http.MethodGet, "/api/dashboard/summary", "admin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary: got %d", rec.Code)
	}
	var sum struct {
		TotalProjects   int `json:"totalProjects"`
		ActiveProjects  int `json:"activeProjects"`
		TotalCaregivers int `json:"totalCaregivers"`
		TotalEmployees  int `json:"totalEmployees"`
	}
	decode(t, rec, &sum)
	if sum.TotalProjects != 1 || sum.ActiveProjects != 0 || sum.TotalCaregivers != 1 || sum.TotalEmployees != 0 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestCreateProjectMissingFields(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodPost, "/api/projects", "admin", `{"name":"Alpha"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing code: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name and code are required") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestReferencesToNonexistentEntities(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodPost, "/api/caregivers", "employee", `{"fullName":"Jane","projectId":"missing"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("caregiver with unknown project: got %d, want 404", rec.Code)
	}
	rec = do(t, h, http.MethodPost, "/api/funds", "employee", `{"projectId":"x","caregiverId":"y","amount":10}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("fund with unknown refs: got %d, want 404", rec.Code)
	}
	rec = do(t, h, http.MethodPost, "/api/activities", "employee", `{"projectId":"x","caregiverId":"y","title":"z"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("activity with unknown refs: got %d, want 404", rec.Code)
	}
	rec = do(t, h, http.MethodPatch, "/api/projects/missing/status", "admin", `{"active":true}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status of unknown project: got %d, want 404", rec.Code)
	}
}

func TestListFilters(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodPost, "/api/projects", "admin", `{"name":"Alpha","code":"ALP"}`)
	var proj struct {
		ID string `json:"id"`
	}
	decode(t, rec, &proj)

	rec = do(t, h, http.MethodGet, "/api/projects?active=true", "employee", "")
	var projects []json.RawMessage
	decode(t, rec, &projects)
	if len(projects) != 1 {
		t.Errorf("active=true returned %d projects, want 1", len(projects))
	}
	rec = do(t, h, http.MethodGet, "/api/projects?active=false", "employee", "")
	projects = nil
	decode(t, rec, &projects)
	if len(projects) != 0 {
		t.Errorf("active=false returned %d projects, want 0", len(projects))
	}

	rec = do(t, h, http.MethodGet, "/api/caregivers?projectId="+proj.ID, "director", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list caregivers: got %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/api/funds?projectId="+proj.ID+"&caregiverId=none", "admin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list funds: got %d", rec.Code)
	}
	var funds []json.RawMessage
	decode(t, rec, &funds)
	if funds == nil {
		t.Error("fund listing should be an empty array, not null")
	}
}
