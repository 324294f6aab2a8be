package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeTokenNotValid(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": detail, "code": "token_not_valid"})
}

// AddUser registers an account and returns its id.
func (b *Backend) AddUser(username, password, email string) int64 {
	fields := b.insert(b.tables["users"], map[string]any{"username": username, "password": password, "email": email})
	return fields["id"].(int64)
}

func (b *Backend) authenticateUser(username, password string) (int64, bool) {
	for _, r := range b.tables["users"].records.Values() {
		if r.fields["username"] == username && r.fields["password"] == password {
			switch id := r.fields["id"].(type) {
			case int64:
				return id, true
			case float64:
				return int64(id), true
			}
		}
	}
	return 0, false
}

func (b *Backend) obtainHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	userID, ok := b.authenticateUser(req.Username, req.Password)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "No active account found with the given credentials")
		return
	}
	access, err := b.createJWT(userID, accessTokenType)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	refresh, err := b.createJWT(userID, refreshTokenType)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access, "refresh": refresh})
}

func (b *Backend) refreshHandler(w http.ResponseWriter, r *http.Request) {
	b.refreshCalls.Add(1)
	if b.RefreshHandler != nil {
		b.RefreshHandler(w, r)
		return
	}
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"refresh": {"This field is required."}})
		return
	}
	claims, err := b.verifyJWT(req.Refresh, refreshTokenType)
	if err != nil {
		writeTokenNotValid(w, "Token is invalid or expired")
		return
	}
	userID, _ := claims["user_id"].(float64)
	access, err := b.createJWT(int64(userID), accessTokenType)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

func (b *Backend) registerHandler(w http.ResponseWriter, r *http.Request) {
	fields := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	username, _ := fields["username"].(string)
	password, _ := fields["password"].(string)
	if username == "" || password == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"username": {"This field is required."}})
		return
	}
	users := b.tables["users"]
	writeJSON(w, http.StatusCreated, users.public(b.insert(users, fields)))
}

// authenticate rejects calls without a valid bearer access token.
func (b *Backend) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
			writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeTokenNotValid(w, "Authorization header must contain two space-delimited values")
			return
		}
		claims, err := b.verifyJWT(tokenString, accessTokenType)
		if err != nil {
			writeTokenNotValid(w, "Given token not valid for any token type")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, claims["user_id"])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
