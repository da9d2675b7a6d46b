package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"caesar_cipher/internal/cryptographic/caesar"
	"caesar_cipher/internal/cryptographic/digest"
	"caesar_cipher/internal/model"
	"caesar_cipher/internal/protocol/bruteforce"
	"caesar_cipher/internal/utils/log"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type (
	RecoveryStore interface {
		GetByFingerprint(ctx context.Context, fingerprint string) (*model.Recovery, error)
		Create(ctx context.Context, rec *model.Recovery) (primitive.ObjectID, error)
	}

	Cache interface {
		Set(ctx context.Context, key string, value any, ttl time.Duration) error
		Get(ctx context.Context, key string) (string, error)
	}

	HttpServer struct {
		cipher *caesar.Cipher
		store  RecoveryStore
		cache  Cache
	}
)

func NewHttpServer(store RecoveryStore, cache Cache) *HttpServer {
	return &HttpServer{
		cipher: caesar.New(nil),
		store:  store,
		cache:  cache,
	}
}

func (s *HttpServer) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/encrypt", s.HandleShift(false)).Methods(http.MethodPost)
	r.HandleFunc("/decrypt", s.HandleShift(true)).Methods(http.MethodPost)
	r.HandleFunc("/crack", s.HandleCrack()).Methods(http.MethodPost)
	r.HandleFunc("/crack/ws", s.HandleCrackWS()).Methods(http.MethodGet)
	r.HandleFunc("/recoveries/{fingerprint}", s.GetRecovery()).Methods(http.MethodGet)
	return r
}

func (s *HttpServer) Run(addr string) error {
	log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Router())
}

func (s *HttpServer) HandleShift(decrypt bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.ShiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var out string
		if decrypt {
			out = s.cipher.Decrypt(req.Message, req.Key)
		} else {
			out = s.cipher.Encrypt(req.Message, req.Key)
		}

		writeJSON(w, http.StatusOK, &model.ShiftResponse{Message: out})
	}
}

func (s *HttpServer) HandleCrack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rec, err := s.Crack(ctx, &req, nil)
		if errors.Is(err, bruteforce.ErrKeyNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			log.Error("crack failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "crack failed")
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

// Crack serves a recovery from cache when possible, otherwise searches and
// records the result. Cache and store failures are logged, not returned.
func (s *HttpServer) Crack(ctx context.Context, req *model.CrackRequest, observer bruteforce.Observer) (*model.Recovery, error) {
	if req.Marker == "" {
		req.Marker = bruteforce.DefaultMarker
	}
	fingerprint := digest.Fingerprint(req.Ciphertext, req.Marker)

	// a streaming client wants every candidate, so only plain requests use the cache
	if observer == nil && s.cache != nil {
		rec, err := s.GetRecoveryFromCache(ctx, fingerprint)
		if err != nil {
			log.Warn("GetRecoveryFromCache failed", zap.Error(err))
		}
		if rec != nil {
			log.Debug("cache hit", zap.String("fingerprint", fingerprint))
			return rec, nil
		}
	}

	found, err := bruteforce.Search(s.cipher, req.Ciphertext, req.Marker, observer)
	if err != nil {
		return nil, err
	}

	rec := &model.Recovery{
		Fingerprint: fingerprint,
		Ciphertext:  req.Ciphertext,
		Marker:      req.Marker,
		Key:         found.Key,
		Plaintext:   found.Text,
		CreatedAt:   time.Now().UTC(),
	}

	if s.store != nil {
		if _, err := s.store.Create(ctx, rec); err != nil {
			log.Error("store recovery failed", zap.Error(err))
		}
	}
	if s.cache != nil {
		if err := s.PutRecoveryToCache(ctx, rec); err != nil {
			log.Error("PutRecoveryToCache failed", zap.Error(err))
		}
	}

	return rec, nil
}

func (s *HttpServer) HandleCrackWS() http.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // Allow all origins
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("Failed to upgrade", zap.Error(err))
			return
		}
		defer conn.Close()

		var req model.CrackRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Debug("read crack request failed", zap.Error(err))
			conn.WriteJSON(&model.StreamFrame{Type: model.FrameError, Error: "invalid request"})
			return
		}

		rec, err := s.Crack(r.Context(), &req, func(c model.Candidate) error {
			return conn.WriteJSON(&model.StreamFrame{Type: model.FrameCandidate, Candidate: &c})
		})

		var last model.StreamFrame
		switch {
		case errors.Is(err, bruteforce.ErrKeyNotFound):
			last = model.StreamFrame{Type: model.FrameNotFound}
		case err != nil:
			log.Error("streamed crack failed", zap.Error(err))
			last = model.StreamFrame{Type: model.FrameError, Error: err.Error()}
		default:
			last = model.StreamFrame{Type: model.FrameResult, Recovery: rec}
		}

		if err := conn.WriteJSON(&last); err != nil {
			log.Debug("worker web socket closed", zap.Error(err))
			return
		}
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}

func (s *HttpServer) GetRecovery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vars := mux.Vars(r)
		fingerprint := vars["fingerprint"]
		log.Info("GetRecovery: ", zap.String("fingerprint", fingerprint))

		if s.store == nil {
			writeError(w, http.StatusNotFound, "recovery does not exist")
			return
		}

		rec, err := s.store.GetByFingerprint(ctx, fingerprint)
		if err != nil {
			log.Error("Get recovery failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Get recovery failed")
			return
		}

		if rec == nil {
			writeError(w, http.StatusNotFound, "recovery does not exist")
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("marshal response failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &model.ErrorResponse{Error: msg})
}
