package voiceai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/livekit/protocol/auth"
)

// roomPrefix, mülakat odalarının LiveKit room adı öneki.
const roomPrefix = "interview-"

type liveKit struct {
	url       string
	apiKey    string
	apiSecret string
	ttl       time.Duration
}

// NewLiveKit, constructor. Token'lar ttl süresince geçerlidir.
func NewLiveKit(serverURL, apiKey, apiSecret string, ttl time.Duration) Provider {
	return &liveKit{url: serverURL, apiKey: apiKey, apiSecret: apiSecret, ttl: ttl}
}

func (p *liveKit) Name() string { return "livekit" }

// SignedURL, aday için room-join token'ı imzalar ve {LIVEKIT_URL}?access_token=...
// döner. Room adı meet id'den, yoksa ajan id'den türetilir. Ajan tarafı
// (LiveKit Agents) room metadata'sından agent_id'yi okur.
func (p *liveKit) SignedURL(_ context.Context, agentID, meetID string) (string, error) {
	if p.url == "" || p.apiKey == "" || p.apiSecret == "" {
		return "", &Error{Status: http.StatusInternalServerError, Message: "LIVEKIT_URL, LIVEKIT_API_KEY and LIVEKIT_API_SECRET must be configured"}
	}

	room := roomPrefix + agentID
	if meetID != "" {
		room = roomPrefix + meetID
	}

	metadata, err := json.Marshal(map[string]string{"agent_id": agentID, "meet_id": meetID})
	if err != nil {
		return "", &Error{Status: http.StatusInternalServerError, Message: "Failed to build LiveKit token", Details: err.Error()}
	}

	canPublish := true
	canSubscribe := true
	at := auth.NewAccessToken(p.apiKey, p.apiSecret)
	at.AddGrant(&auth.VideoGrant{
		RoomJoin:     true,
		Room:         room,
		CanPublish:   &canPublish,
		CanSubscribe: &canSubscribe,
	}).
		SetIdentity("candidate-" + uuid.NewString()).
		SetName("candidate").
		SetMetadata(string(metadata)).
		SetValidFor(p.ttl)

	token, err := at.ToJWT()
	if err != nil {
		return "", &Error{Status: http.StatusInternalServerError, Message: "Failed to build LiveKit token", Details: err.Error()}
	}

	return p.url + "?" + url.Values{"access_token": {token}}.Encode(), nil
}
