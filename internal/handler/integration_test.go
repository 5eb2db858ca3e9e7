package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hangout-api/internal/client"
	"hangout-api/internal/consensus"
	"hangout-api/internal/dto"
	"hangout-api/internal/repository"
	"hangout-api/internal/service"
)

// setupIntegrationTestDB creates an in-memory SQLite database for integration
// testing. Tables are created by hand for SQLite compatibility; the
// production DDL relies on PostgreSQL defaults.
func setupIntegrationTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "Failed to connect to test database")

	statements := []string{
		`CREATE TABLE hangouts (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			creator_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			location TEXT,
			start_time DATETIME,
			end_time DATETIME,
			privacy TEXT NOT NULL DEFAULT 'PRIVATE',
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			max_participants INTEGER DEFAULT 0
		)`,
		`CREATE TABLE polls (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			hangout_id TEXT NOT NULL,
			creator_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			threshold INTEGER NOT NULL DEFAULT 70,
			min_participants INTEGER NOT NULL DEFAULT 2,
			options TEXT
		)`,
		`CREATE TABLE votes (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			poll_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			option_id TEXT NOT NULL,
			preferred INTEGER NOT NULL DEFAULT 0,
			UNIQUE (poll_id, user_id, option_id)
		)`,
		`CREATE TABLE participants (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			hangout_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'MEMBER',
			is_co_host INTEGER NOT NULL DEFAULT 0,
			can_edit INTEGER NOT NULL DEFAULT 0,
			is_mandatory INTEGER NOT NULL DEFAULT 0,
			UNIQUE (hangout_id, user_id)
		)`,
		`CREATE TABLE rsvps (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			hangout_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			responded_at DATETIME,
			UNIQUE (hangout_id, user_id)
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, "Failed to create table")
	}

	return db
}

// setupIntegrationRouter wires real services and repositories behind a test
// authentication middleware that reads the user ID from the X-User-ID header.
func setupIntegrationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(func(c *gin.Context) {
		if userIDStr := c.GetHeader("X-User-ID"); userIDStr != "" {
			if userID, err := uuid.Parse(userIDStr); err == nil {
				c.Set("user_id", userID)
				c.Set("jwtToken", "test-token")
			}
		}
		c.Next()
	})

	logger := zap.NewNop()
	notifier := client.NewNoOpNotificationClient()

	hangoutRepo := repository.NewHangoutRepository(db)
	pollRepo := repository.NewPollRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	finalizeRepo := repository.NewFinalizeRepository(db)

	settings := consensus.Settings{Threshold: 70, MinParticipants: 2}

	participantService := service.NewParticipantService(participantRepo, hangoutRepo, notifier)
	hangoutService := service.NewHangoutService(hangoutRepo, pollRepo, participantRepo, rsvpRepo, settings, nil, logger)
	voteService := service.NewVoteService(hangoutRepo, pollRepo, voteRepo, participantRepo, finalizeRepo, participantService, notifier, nil, logger)
	rsvpService := service.NewRSVPService(rsvpRepo, hangoutRepo, pollRepo, nil, logger)

	hangoutHandler := NewHangoutHandler(hangoutService)
	voteHandler := NewVoteHandler(voteService)
	participantHandler := NewParticipantHandler(participantService)
	rsvpHandler := NewRSVPHandler(rsvpService)

	api := router.Group("/api/hangouts")
	{
		api.POST("", hangoutHandler.CreateHangout)
		api.GET("", hangoutHandler.GetMyHangouts)
		api.GET("/:hangoutId", hangoutHandler.GetHangout)
		api.PUT("/:hangoutId", hangoutHandler.UpdateHangout)
		api.DELETE("/:hangoutId", hangoutHandler.CancelHangout)

		api.POST("/:hangoutId/participants", participantHandler.InviteParticipants)
		api.GET("/:hangoutId/participants", participantHandler.GetParticipants)
		api.DELETE("/:hangoutId/participants/:userId", participantHandler.RemoveParticipant)

		api.POST("/:hangoutId/votes", voteHandler.CastVote)
		api.GET("/:hangoutId/poll/summary", voteHandler.GetPollSummary)

		api.GET("/:hangoutId/rsvps", rsvpHandler.GetRSVPs)
		api.PUT("/:hangoutId/rsvps/me", rsvpHandler.RespondRSVP)
	}

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, userID uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID.String())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response should carry a data envelope: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	errObj, ok := resp["error"].(map[string]interface{})
	require.True(t, ok, "response should carry an error envelope: %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

// createHangoutViaAPI posts a hangout and returns its decoded response data
func createHangoutViaAPI(t *testing.T, router *gin.Engine, creatorID uuid.UUID, req dto.CreateHangoutRequest) map[string]interface{} {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/hangouts", creatorID, req)
	require.Equal(t, http.StatusCreated, w.Code, "create hangout failed: %s", w.Body.String())
	return decodeData(t, w)
}

func pollOptionIDs(t *testing.T, hangout map[string]interface{}) []string {
	t.Helper()
	poll, ok := hangout["poll"].(map[string]interface{})
	require.True(t, ok, "hangout should have a poll")
	rawOptions, ok := poll["options"].([]interface{})
	require.True(t, ok)

	ids := make([]string, len(rawOptions))
	for i, raw := range rawOptions {
		opt := raw.(map[string]interface{})
		ids[i] = opt["id"].(string)
	}
	return ids
}

func TestIntegration_CreateHangout_OptionCountDrivesPhase(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)
	creatorID := uuid.New()

	t.Run("two options open voting", func(t *testing.T) {
		data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{
			Title: "Game night",
			Options: []dto.PollOptionRequest{
				{Title: "Bowling"},
				{Title: "Karaoke"},
			},
		})
		assert.Equal(t, "PUBLISHED", data["status"])
		assert.Equal(t, "voting", data["phase"])
		poll := data["poll"].(map[string]interface{})
		assert.Equal(t, "ACTIVE", poll["status"])
	})

	t.Run("single option confirms immediately", func(t *testing.T) {
		data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{
			Title:   "Dinner",
			Options: []dto.PollOptionRequest{{Title: "That one place"}},
		})
		assert.Equal(t, "ACTIVE", data["status"])
		assert.Equal(t, "rsvp", data["phase"])
		poll := data["poll"].(map[string]interface{})
		assert.Equal(t, "CONSENSUS_REACHED", poll["status"])
	})

	t.Run("no options stay in planning", func(t *testing.T) {
		data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{
			Title: "Sometime soon",
		})
		assert.Equal(t, "DRAFT", data["status"])
		assert.Equal(t, "planning", data["phase"])
		assert.Nil(t, data["poll"])
	})

	t.Run("missing title rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/hangouts", creatorID, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// The full lifecycle: create with two options, a second voter joins by
// voting, consensus is reached, RSVPs open and are answered.
func TestIntegration_ConsensusFlow(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)

	creatorID := uuid.New()
	friendID := uuid.New()

	data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{
		Title: "Weekend plans",
		Options: []dto.PollOptionRequest{
			{Title: "Hiking"},
			{Title: "Museum"},
		},
		Threshold:       100,
		MinParticipants: 2,
	})
	hangoutID := data["id"].(string)
	optionIDs := pollOptionIDs(t, data)

	// RSVPs are rejected while voting is open
	w := doJSON(t, router, http.MethodPut, "/api/hangouts/"+hangoutID+"/rsvps/me", creatorID, dto.RespondRSVPRequest{Status: "YES"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	// A vote on an option from another poll is rejected
	w = doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/votes", friendID, dto.CastVoteRequest{
		OptionID: uuid.New(),
		Action:   dto.VoteActionAdd,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The friend votes without being invited first: voting implies joining
	w = doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/votes", friendID, dto.CastVoteRequest{
		OptionID: uuid.MustParse(optionIDs[0]),
		Action:   dto.VoteActionAdd,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	voteData := decodeData(t, w)
	assert.Equal(t, false, voteData["finalized"])
	assert.Equal(t, "voting", voteData["phase"])

	w = doJSON(t, router, http.MethodGet, "/api/hangouts/"+hangoutID+"/participants", creatorID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var participantsResp struct {
		Data []dto.ParticipantResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &participantsResp))
	assert.Len(t, participantsResp.Data, 2, "voting must have auto-joined the friend")

	// The creator's matching vote brings option 0 to 2 of 2 at threshold 100
	w = doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/votes", creatorID, dto.CastVoteRequest{
		OptionID: uuid.MustParse(optionIDs[0]),
		Action:   dto.VoteActionAdd,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	voteData = decodeData(t, w)
	assert.Equal(t, true, voteData["finalized"])
	assert.Equal(t, "rsvp", voteData["phase"])
	winner := voteData["winner"].(map[string]interface{})
	assert.Equal(t, optionIDs[0], winner["id"])

	// The hangout is now ACTIVE and its poll snapshot holds only the winner
	w = doJSON(t, router, http.MethodGet, "/api/hangouts/"+hangoutID, creatorID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	hangoutData := decodeData(t, w)
	assert.Equal(t, "ACTIVE", hangoutData["status"])
	assert.Len(t, pollOptionIDs(t, hangoutData), 1)

	// Further votes bounce off the closed poll
	w = doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/votes", friendID, dto.CastVoteRequest{
		OptionID: uuid.MustParse(optionIDs[1]),
		Action:   dto.VoteActionAdd,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VOTING_CLOSED", errorCode(t, w))

	// Both participants got a PENDING RSVP
	w = doJSON(t, router, http.MethodGet, "/api/hangouts/"+hangoutID+"/rsvps", creatorID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rsvpsResp struct {
		Data []dto.RSVPResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsvpsResp))
	require.Len(t, rsvpsResp.Data, 2)
	for _, rsvp := range rsvpsResp.Data {
		assert.Equal(t, "PENDING", rsvp.Status)
	}

	// The friend confirms attendance
	w = doJSON(t, router, http.MethodPut, "/api/hangouts/"+hangoutID+"/rsvps/me", friendID, dto.RespondRSVPRequest{Status: "YES"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rsvpData := decodeData(t, w)
	assert.Equal(t, "YES", rsvpData["status"])
	assert.NotNil(t, rsvpData["respondedAt"])

	// An outsider without a PENDING row cannot respond
	w = doJSON(t, router, http.MethodPut, "/api/hangouts/"+hangoutID+"/rsvps/me", uuid.New(), dto.RespondRSVPRequest{Status: "NO"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_PollSummary(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)

	creatorID := uuid.New()
	friendID := uuid.New()

	data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{
		Title: "Lunch options",
		Options: []dto.PollOptionRequest{
			{Title: "Pizza"},
			{Title: "Sushi"},
		},
	})
	hangoutID := data["id"].(string)
	optionIDs := pollOptionIDs(t, data)

	w := doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/votes", friendID, dto.CastVoteRequest{
		OptionID: uuid.MustParse(optionIDs[1]),
		Action:   dto.VoteActionAdd,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/hangouts/"+hangoutID+"/poll/summary", creatorID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaryResp struct {
		Data dto.PollSummaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaryResp))
	summary := summaryResp.Data

	assert.Equal(t, 70, summary.Threshold)
	assert.Equal(t, 2, summary.ActiveParticipants)
	require.Len(t, summary.Tallies, 2)
	assert.Equal(t, 0, summary.Tallies[0].Votes)
	assert.Equal(t, 1, summary.Tallies[1].Votes)
	assert.InDelta(t, 50.0, summary.Tallies[1].Percentage, 0.001)
}

func TestIntegration_InviteParticipants(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)

	creatorID := uuid.New()
	data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{Title: "Picnic"})
	hangoutID := data["id"].(string)

	t.Run("bulk invite succeeds", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/participants", creatorID, dto.InviteParticipantsRequest{
			UserIDs: []uuid.UUID{uuid.New(), uuid.New()},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		inviteData := decodeData(t, w)
		assert.Equal(t, float64(2), inviteData["totalSuccess"])
		assert.Equal(t, float64(0), inviteData["totalFailed"])
	})

	t.Run("re-inviting is a partial success", func(t *testing.T) {
		existing := uuid.New()
		w := doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/participants", creatorID, dto.InviteParticipantsRequest{
			UserIDs: []uuid.UUID{existing},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/participants", creatorID, dto.InviteParticipantsRequest{
			UserIDs: []uuid.UUID{existing, uuid.New()},
		})
		require.Equal(t, http.StatusMultiStatus, w.Code, w.Body.String())
		// Partial results are returned unwrapped with the 207 status
		var partial dto.InviteParticipantsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partial))
		assert.Equal(t, 1, partial.TotalSuccess)
		assert.Equal(t, 1, partial.TotalFailed)
	})

	t.Run("members cannot invite", func(t *testing.T) {
		member := uuid.New()
		w := doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/participants", creatorID, dto.InviteParticipantsRequest{
			UserIDs: []uuid.UUID{member},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/participants", member, dto.InviteParticipantsRequest{
			UserIDs: []uuid.UUID{uuid.New()},
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("empty user list rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/participants", creatorID, map[string]interface{}{
			"userIds": []string{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIntegration_RemoveParticipant(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)

	creatorID := uuid.New()
	memberID := uuid.New()

	data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{Title: "Trip"})
	hangoutID := data["id"].(string)

	w := doJSON(t, router, http.MethodPost, "/api/hangouts/"+hangoutID+"/participants", creatorID, dto.InviteParticipantsRequest{
		UserIDs: []uuid.UUID{memberID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The creator cannot be removed
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/hangouts/%s/participants/%s", hangoutID, creatorID), creatorID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Members can leave on their own
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/hangouts/%s/participants/%s", hangoutID, memberID), memberID, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/hangouts/"+hangoutID+"/participants", creatorID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var participantsResp struct {
		Data []dto.ParticipantResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &participantsResp))
	assert.Len(t, participantsResp.Data, 1)
}

func TestIntegration_UpdateAndCancelHangout(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)

	creatorID := uuid.New()
	data := createHangoutViaAPI(t, router, creatorID, dto.CreateHangoutRequest{
		Title: "Movie night",
		Options: []dto.PollOptionRequest{
			{Title: "Cinema"},
			{Title: "Home theater"},
		},
	})
	hangoutID := data["id"].(string)

	t.Run("creator updates metadata", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/hangouts/"+hangoutID, creatorID, map[string]interface{}{
			"title":    "Movie marathon",
			"location": "At Sam's",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decodeData(t, w)
		assert.Equal(t, "Movie marathon", updated["title"])
		assert.Equal(t, "At Sam's", updated["location"])
	})

	t.Run("outsiders cannot update", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/hangouts/"+hangoutID, uuid.New(), map[string]interface{}{
			"title": "Hijacked",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("only the creator cancels", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/hangouts/"+hangoutID, uuid.New(), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/api/hangouts/"+hangoutID, creatorID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		// Cancelling closed the poll, so voting is rejected
		getResp := doJSON(t, router, http.MethodGet, "/api/hangouts/"+hangoutID, creatorID, nil)
		hangoutData := decodeData(t, getResp)
		assert.Equal(t, "CANCELLED", hangoutData["status"])
		poll := hangoutData["poll"].(map[string]interface{})
		assert.Equal(t, "CLOSED", poll["status"])
	})
}

func TestIntegration_GetHangout_Errors(t *testing.T) {
	db := setupIntegrationTestDB(t)
	router := setupIntegrationRouter(db)
	userID := uuid.New()

	w := doJSON(t, router, http.MethodGet, "/api/hangouts/not-a-uuid", userID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/hangouts/"+uuid.NewString(), userID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}
