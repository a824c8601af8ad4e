package api_test

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/service"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestWellnessHandler_Submit(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("saved", func(t *testing.T) {
		ts := newTestServer(t)
		ts.wellness.EXPECT().
			SubmitToday(gomock.Any(), userID, service.WellnessInput{
				Sleep: 4, Motivation: 5, Nutrition: 3, Hydration: 4, Fatigue: 2, Stress: 1, Pain: 3,
				PainZones: map[string]int{"left-knee": 6},
			}).
			DoAndReturn(func(_ context.Context, id primitive.ObjectID, in service.WellnessInput) (*domain.WellnessEntry, error) {
				return &domain.WellnessEntry{ID: primitive.NewObjectID(), UserID: id, Date: "2024-03-15", Sleep: in.Sleep, PainZones: in.PainZones}, nil
			})

		rec := ts.do(t, http.MethodPost, "/api/v1/wellness", tokenFor(t, userID, domain.RoleAthlete), gin.H{
			"sleep": 4, "motivation": 5, "nutrition": 3, "hydration": 4, "fatigue": 2, "stress": 1, "pain": 3,
			"painZones": gin.H{"left-knee": 6},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "2024-03-15", body["date"])
		assert.Equal(t, 4.0, body["sleep"])
	})

	t.Run("malformed body never reaches the service", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/v1/wellness", tokenFor(t, userID, domain.RoleAthlete), gin.H{"sleep": "lots"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("score out of range", func(t *testing.T) {
		ts := newTestServer(t)
		ts.wellness.EXPECT().
			SubmitToday(gomock.Any(), userID, gomock.Any()).
			Return(nil, fmt.Errorf("%w: sleep must be between 1 and 5", service.ErrValidationFailed))

		rec := ts.do(t, http.MethodPost, "/api/v1/wellness", tokenFor(t, userID, domain.RoleAthlete), gin.H{"sleep": 9})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[gin.H](t, rec)["error"], "sleep")
	})

	t.Run("admins are not athletes", func(t *testing.T) {
		ts := newTestServer(t)
		ts.wellness.EXPECT().SubmitToday(gomock.Any(), userID, gomock.Any()).Return(nil, service.ErrNotAthlete)

		rec := ts.do(t, http.MethodPost, "/api/v1/wellness", tokenFor(t, userID, domain.RoleAdmin), gin.H{"sleep": 3})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWellnessHandler_Mine(t *testing.T) {
	ts := newTestServer(t)
	userID := primitive.NewObjectID()
	ts.wellness.EXPECT().MyHistory(gomock.Any(), userID).Return(nil, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/wellness", tokenFor(t, userID, domain.RoleAthlete), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestWellnessHandler_Admin(t *testing.T) {
	adminToken := func(t *testing.T) string { return tokenFor(t, primitive.NewObjectID(), domain.RoleAdmin) }

	t.Run("athlete history", func(t *testing.T) {
		ts := newTestServer(t)
		athleteID := primitive.NewObjectID()
		ts.wellness.EXPECT().
			ForAthlete(gomock.Any(), athleteID).
			Return([]domain.WellnessEntry{{UserID: athleteID, Date: "2024-03-14"}, {UserID: athleteID, Date: "2024-03-15"}}, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/admin/athletes/"+athleteID.Hex()+"/wellness", adminToken(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]domain.WellnessEntry](t, rec), 2)
	})

	t.Run("unknown athlete", func(t *testing.T) {
		ts := newTestServer(t)
		athleteID := primitive.NewObjectID()
		ts.wellness.EXPECT().ForAthlete(gomock.Any(), athleteID).Return(nil, service.ErrUserNotFound)

		rec := ts.do(t, http.MethodGet, "/api/v1/admin/athletes/"+athleteID.Hex()+"/wellness", adminToken(t), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed athlete id", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodGet, "/api/v1/admin/athletes/nope/wellness", adminToken(t), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("overview by date", func(t *testing.T) {
		ts := newTestServer(t)
		ts.wellness.EXPECT().
			ByDate(gomock.Any(), "2024-03-15").
			Return([]service.AthleteWellness{{Athlete: domain.User{Name: "Ana", Role: domain.RoleAthlete}}}, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/admin/wellness?date=2024-03-15", adminToken(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rows := decode[[]map[string]any](t, rec)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0]["entry"])
	})

	t.Run("overview defaults to today", func(t *testing.T) {
		ts := newTestServer(t)
		ts.wellness.EXPECT().ByDate(gomock.Any(), "").Return(nil, nil)

		rec := ts.do(t, http.MethodGet, "/api/v1/admin/wellness", adminToken(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("invalid date", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodGet, "/api/v1/admin/wellness?date=15/03/2024", adminToken(t), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("athletes are turned away", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodGet, "/api/v1/admin/wellness", tokenFor(t, primitive.NewObjectID(), domain.RoleAthlete), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAnalyticsHandler_ExportReport(t *testing.T) {
	adminID := primitive.NewObjectID()
	athleteID := primitive.NewObjectID()
	path := "/api/v1/admin/athletes/" + athleteID.Hex() + "/reports"

	t.Run("created", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reports.EXPECT().
			Export(gomock.Any(), adminID, athleteID, 28).
			Return(&service.ReportLink{
				Report: domain.Report{ID: primitive.NewObjectID(), AthleteID: athleteID, CreatedBy: adminID, S3ObjectKey: "reports/x.csv", Days: 28, Points: 19},
				URL:    "https://storage.test/reports/x.csv?signed=1",
			}, nil)

		rec := ts.do(t, http.MethodPost, path, tokenFor(t, adminID, domain.RoleAdmin), gin.H{"days": 28})
		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "https://storage.test/reports/x.csv?signed=1", body["url"])
		report := body["report"].(map[string]any)
		assert.Equal(t, 19.0, report["points"])
		assert.NotContains(t, report, "s3ObjectKey")
	})

	t.Run("days are required", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, path, tokenFor(t, adminID, domain.RoleAdmin), gin.H{"days": 0})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not an athlete", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reports.EXPECT().Export(gomock.Any(), adminID, athleteID, 7).Return(nil, service.ErrNotAthlete)

		rec := ts.do(t, http.MethodPost, path, tokenFor(t, adminID, domain.RoleSuperAdmin), gin.H{"days": 7})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure is not leaked", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reports.EXPECT().Export(gomock.Any(), adminID, athleteID, 7).Return(nil, fmt.Errorf("upload report: bucket athlete-reports unreachable"))

		rec := ts.do(t, http.MethodPost, path, tokenFor(t, adminID, domain.RoleAdmin), gin.H{"days": 7})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "bucket")
	})

	t.Run("athletes are turned away", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, path, tokenFor(t, athleteID, domain.RoleAthlete), gin.H{"days": 7})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAnalyticsHandler_ListReports(t *testing.T) {
	athleteID := primitive.NewObjectID()
	path := "/api/v1/admin/athletes/" + athleteID.Hex() + "/reports"

	t.Run("empty", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reports.EXPECT().List(gomock.Any(), athleteID).Return(nil, nil)

		rec := ts.do(t, http.MethodGet, path, tokenFor(t, primitive.NewObjectID(), domain.RoleAdmin), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("newest first as returned", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reports.EXPECT().List(gomock.Any(), athleteID).Return([]service.ReportLink{
			{Report: domain.Report{Days: 7}, URL: "https://storage.test/b"},
			{Report: domain.Report{Days: 28}, URL: "https://storage.test/a"},
		}, nil)

		rec := ts.do(t, http.MethodGet, path, tokenFor(t, primitive.NewObjectID(), domain.RoleAdmin), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		links := decode[[]map[string]any](t, rec)
		require.Len(t, links, 2)
		assert.Equal(t, "https://storage.test/b", links[0]["url"])
	})

	t.Run("malformed athlete id", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodGet, "/api/v1/admin/athletes/123/reports", tokenFor(t, primitive.NewObjectID(), domain.RoleAdmin), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
