package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/middleware"
	"phonebot/internal/models"
	"phonebot/internal/pagination"
	"phonebot/internal/services"
)

type adminMocks struct {
	records *mockPhoneRecordService
	users   *mockBotUserService
	stats   *mockStatisticsService
}

func newAdminMocks() adminMocks {
	return adminMocks{
		records: &mockPhoneRecordService{},
		users:   &mockBotUserService{},
		stats:   &mockStatisticsService{},
	}
}

func setupAdminRouter(m adminMocks) *gin.Engine {
	handler := NewAdminHandler(m.records, m.users, m.stats)
	r := gin.New()
	r.Any("/api/admin", middleware.AdminCORS(), handler.Handle)
	return r
}

func TestAdminHandler_Statistics(t *testing.T) {
	t.Run("returns counters", func(t *testing.T) {
		m := newAdminMocks()
		m.stats.getStatisticsFn = func() (*services.Statistics, error) {
			return &services.Statistics{TotalUsers: 5, TotalSearches: 12, DatabaseRecords: 3, ActiveToday: 2}, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodGet, "/api/admin?path=statistics", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		want := map[string]float64{"totalUsers": 5, "totalSearches": 12, "databaseRecords": 3, "activeToday": 2}
		for key, value := range want {
			if result[key] != value {
				t.Errorf("expected %s=%v, got %v", key, value, result[key])
			}
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("expected CORS header on response")
		}
	})

	t.Run("returns 500 with cause on store failure", func(t *testing.T) {
		m := newAdminMocks()
		m.stats.getStatisticsFn = func() (*services.Statistics, error) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("connection refused"))
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodGet, "/api/admin?path=statistics", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorText(t, rec, "connection refused")
	})
}

func TestAdminHandler_ListPhoneRecords(t *testing.T) {
	t.Run("passes search and formats dates", func(t *testing.T) {
		var gotSearch string
		var gotPage pagination.PageRequest
		m := newAdminMocks()
		m.records.listPhoneRecordsFn = func(search string, page pagination.PageRequest) ([]models.PhoneRecord, error) {
			gotSearch = search
			gotPage = page
			return []models.PhoneRecord{
				{
					Base:           models.Base{ID: 2, CreatedAt: time.Date(2025, 3, 9, 12, 0, 0, 0, time.Local)},
					Phone:          "+79991234567",
					Name:           "Ivan",
					Info:           "note",
					AdditionalInfo: []models.AdditionalInfo{{Label: "City", Value: "Moscow"}},
					Status:         models.RecordStatusActive,
				},
			}, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodGet, "/api/admin?path=phone-records&search=999", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSearch != "999" {
			t.Errorf("expected search '999', got %q", gotSearch)
		}
		if gotPage.Enabled() {
			t.Errorf("expected paging disabled, got %+v", gotPage)
		}

		items := parseJSONArray(t, rec)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0]["created_at"] != "09.03.2025" {
			t.Errorf("expected created_at 09.03.2025, got %v", items[0]["created_at"])
		}
		if items[0]["status"] != "active" || items[0]["phone"] != "+79991234567" {
			t.Errorf("unexpected item: %v", items[0])
		}
		extra, ok := items[0]["additional_info"].([]interface{})
		if !ok || len(extra) != 1 {
			t.Errorf("expected one additional_info entry, got %v", items[0]["additional_info"])
		}
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		m := newAdminMocks()
		m.records.listPhoneRecordsFn = func(string, pagination.PageRequest) ([]models.PhoneRecord, error) {
			return nil, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodGet, "/api/admin?path=phone-records", "")

		if rec.Body.String() != "[]" {
			t.Errorf("expected [], got %s", rec.Body.String())
		}
	})

	t.Run("page size enables paging", func(t *testing.T) {
		var gotPage pagination.PageRequest
		m := newAdminMocks()
		m.records.listPhoneRecordsFn = func(_ string, page pagination.PageRequest) ([]models.PhoneRecord, error) {
			gotPage = page
			return nil, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodGet, "/api/admin?path=phone-records&page_size=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPage.Page != 1 || gotPage.PageSize != 10 {
			t.Errorf("expected page 1 size 10, got %+v", gotPage)
		}
	})

	t.Run("invalid page size returns 400", func(t *testing.T) {
		r := setupAdminRouter(newAdminMocks())

		rec := doRequest(r, http.MethodGet, "/api/admin?path=phone-records&page_size=0&page=-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAdminHandler_ListBotUsers(t *testing.T) {
	var gotSearch string
	m := newAdminMocks()
	m.users.listBotUsersFn = func(search string, _ pagination.PageRequest) ([]models.BotUser, error) {
		gotSearch = search
		return []models.BotUser{
			{
				Base:        models.Base{ID: 1, CreatedAt: time.Date(2025, 1, 2, 8, 0, 0, 0, time.Local)},
				TelegramID:  555,
				Username:    "ivan",
				FirstName:   "Ivan",
				SearchCount: 4,
				Status:      models.UserStatusActive,
				LastActive:  time.Date(2025, 1, 5, 14, 7, 0, 0, time.Local),
			},
		}, nil
	}
	r := setupAdminRouter(m)

	rec := doRequest(r, http.MethodGet, "/api/admin?path=users&search=ivan", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotSearch != "ivan" {
		t.Errorf("expected search 'ivan', got %q", gotSearch)
	}
	items := parseJSONArray(t, rec)
	if len(items) != 1 {
		t.Fatalf("expected 1 user, got %d", len(items))
	}
	if items[0]["joined"] != "02.01.2025" {
		t.Errorf("expected joined 02.01.2025, got %v", items[0]["joined"])
	}
	if items[0]["last_active"] != "05.01.2025 14:07" {
		t.Errorf("expected last_active '05.01.2025 14:07', got %v", items[0]["last_active"])
	}
	if items[0]["telegram_id"] != float64(555) || items[0]["search_count"] != float64(4) {
		t.Errorf("unexpected user: %v", items[0])
	}
}

func TestAdminHandler_CreatePhoneRecord(t *testing.T) {
	t.Run("returns 201 with active record", func(t *testing.T) {
		m := newAdminMocks()
		m.records.createPhoneRecordFn = func(phone, name, info string, additional []models.AdditionalInfo) (*models.PhoneRecord, error) {
			return &models.PhoneRecord{
				Base:   models.Base{ID: 7},
				Phone:  phone,
				Name:   name,
				Info:   info,
				Status: models.RecordStatusActive,
			}, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodPost, "/api/admin?path=phone-records",
			`{"phone":"+79991234567","name":"Ivan","info":"note","status":"inactive"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["id"] != float64(7) {
			t.Errorf("expected id 7, got %v", result["id"])
		}
		if result["status"] != "active" {
			t.Errorf("expected status active, got %v", result["status"])
		}
		if extra, ok := result["additional_info"].([]interface{}); !ok || len(extra) != 0 {
			t.Errorf("expected empty additional_info array, got %v", result["additional_info"])
		}
	})

	t.Run("passes additional info", func(t *testing.T) {
		var got []models.AdditionalInfo
		m := newAdminMocks()
		m.records.createPhoneRecordFn = func(_, _, _ string, additional []models.AdditionalInfo) (*models.PhoneRecord, error) {
			got = additional
			return &models.PhoneRecord{}, nil
		}
		r := setupAdminRouter(m)

		doRequest(r, http.MethodPost, "/api/admin?path=phone-records",
			`{"phone":"1","name":"A","additional_info":[{"label":"Car","value":"BMW"}]}`)

		if len(got) != 1 || got[0].Label != "Car" || got[0].Value != "BMW" {
			t.Errorf("unexpected additional info %v", got)
		}
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		r := setupAdminRouter(newAdminMocks())

		rec := doRequest(r, http.MethodPost, "/api/admin?path=phone-records", `{"phone":"+79991234567"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("malformed json returns 400", func(t *testing.T) {
		r := setupAdminRouter(newAdminMocks())

		rec := doRequest(r, http.MethodPost, "/api/admin?path=phone-records", `{"phone":`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown path returns 400", func(t *testing.T) {
		r := setupAdminRouter(newAdminMocks())

		rec := doRequest(r, http.MethodPost, "/api/admin?path=users", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorText(t, rec, "Invalid path parameter")
	})
}

func TestAdminHandler_UpdatePhoneRecord(t *testing.T) {
	t.Run("returns updated record", func(t *testing.T) {
		var gotStatus models.RecordStatus
		var gotAdditional []models.AdditionalInfo
		m := newAdminMocks()
		m.records.updatePhoneRecordFn = func(id uint, phone, name, info string, status models.RecordStatus, additional []models.AdditionalInfo) (*models.PhoneRecord, error) {
			gotStatus = status
			gotAdditional = additional
			return &models.PhoneRecord{Base: models.Base{ID: id}, Phone: phone, Name: name, Info: info, Status: status}, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodPut, "/api/admin?path=phone-records",
			`{"id":3,"phone":"79990000000","name":"Petr","info":"","status":"inactive"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotStatus != models.RecordStatusInactive {
			t.Errorf("expected inactive, got %s", gotStatus)
		}
		if gotAdditional != nil {
			t.Errorf("expected nil additional info when omitted, got %v", gotAdditional)
		}
		result := parseJSON(t, rec)
		if result["id"] != float64(3) || result["name"] != "Petr" {
			t.Errorf("unexpected record: %v", result)
		}
	})

	t.Run("missing record returns 200 null", func(t *testing.T) {
		m := newAdminMocks()
		m.records.updatePhoneRecordFn = func(uint, string, string, string, models.RecordStatus, []models.AdditionalInfo) (*models.PhoneRecord, error) {
			return nil, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodPut, "/api/admin?path=phone-records",
			`{"id":999,"phone":"79990000000","name":"Nobody","info":"","status":"active"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != "null" {
			t.Errorf("expected null body, got %s", rec.Body.String())
		}
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		r := setupAdminRouter(newAdminMocks())

		rec := doRequest(r, http.MethodPut, "/api/admin?path=phone-records",
			`{"id":3,"phone":"79990000000","name":"Petr","status":"deleted"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAdminHandler_UpdateUserStatus(t *testing.T) {
	t.Run("returns limited user fields", func(t *testing.T) {
		m := newAdminMocks()
		m.users.updateBotUserStatusFn = func(id uint, status models.UserStatus) (*models.BotUser, error) {
			return &models.BotUser{Base: models.Base{ID: id}, TelegramID: 555, Username: "ivan", FirstName: "Ivan", Status: status}, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodPut, "/api/admin?path=users", `{"id":1,"status":"blocked"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["status"] != "blocked" || result["telegram_id"] != float64(555) || result["username"] != "ivan" {
			t.Errorf("unexpected body: %v", result)
		}
		if _, ok := result["first_name"]; ok {
			t.Error("expected first_name to be omitted")
		}
	})

	t.Run("missing user returns 200 null", func(t *testing.T) {
		m := newAdminMocks()
		m.users.updateBotUserStatusFn = func(uint, models.UserStatus) (*models.BotUser, error) {
			return nil, nil
		}
		r := setupAdminRouter(m)

		rec := doRequest(r, http.MethodPut, "/api/admin?path=users", `{"id":42,"status":"active"}`)

		if rec.Code != http.StatusOK || rec.Body.String() != "null" {
			t.Errorf("expected 200 null, got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("invalid status returns 400", func(t *testing.T) {
		r := setupAdminRouter(newAdminMocks())

		rec := doRequest(r, http.MethodPut, "/api/admin?path=users", `{"id":1,"status":"banned"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAdminHandler_Routing(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantError  string
	}{
		{"get_unknown_path", http.MethodGet, "/api/admin?path=nope", http.StatusBadRequest, "Invalid path parameter"},
		{"get_missing_path", http.MethodGet, "/api/admin", http.StatusBadRequest, "Invalid path parameter"},
		{"put_statistics", http.MethodPut, "/api/admin?path=statistics", http.StatusBadRequest, "Invalid path parameter"},
		{"delete", http.MethodDelete, "/api/admin?path=phone-records", http.StatusMethodNotAllowed, "Method not allowed"},
		{"patch", http.MethodPatch, "/api/admin?path=users", http.StatusMethodNotAllowed, "Method not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAdminRouter(newAdminMocks())

			rec := doRequest(r, tt.method, tt.target, "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			assertErrorText(t, rec, tt.wantError)
		})
	}

	t.Run("options_preflight", func(t *testing.T) {
		r := setupAdminRouter(newAdminMocks())

		rec := doRequest(r, http.MethodOptions, "/api/admin?path=phone-records", "")

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", rec.Body.String())
		}
		if rec.Header().Get("Access-Control-Allow-Headers") != "Content-Type, X-Admin-Token" {
			t.Errorf("unexpected allow-headers %q", rec.Header().Get("Access-Control-Allow-Headers"))
		}
	})
}
