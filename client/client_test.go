package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelsoft/concierge/client"
)

type staticTokens string

func (s staticTokens) Token() (string, bool) { return string(s), s != "" }

// recordedRequest captures what the server saw for header assertions.
type recordedRequest struct {
	Path          string
	Authorization string
	RequestID     string
}

func TestBearerInjection(t *testing.T) {
	var seen []recordedRequest
	record := func(req *http.Request) {
		seen = append(seen, recordedRequest{
			Path:          req.URL.Path,
			Authorization: req.Header.Get("Authorization"),
			RequestID:     req.Header.Get("X-Request-ID"),
		})
	}

	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		record(req)
		json.NewEncoder(w).Encode(client.LoginResponse{Token: "t"})
	})
	r.Post("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		record(req)
		json.NewEncoder(w).Encode(client.MessageResponse{Message: "ok"})
	})
	r.Get("/api/habitaciones", func(w http.ResponseWriter, req *http.Request) {
		record(req)
		json.NewEncoder(w).Encode([]client.Room{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := client.New(srv.URL, staticTokens("stored-token"))

	_, err := c.Login(context.Background(), "u@x.com", "pw")
	require.NoError(t, err)
	_, err = c.Register(context.Background(), client.RegisterRequest{Email: "u@x.com"})
	require.NoError(t, err)
	_, err = c.Rooms(context.Background())
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.Empty(t, seen[0].Authorization, "login must not carry a stale token")
	assert.Empty(t, seen[1].Authorization, "register must not carry a stale token")
	assert.Equal(t, "Bearer stored-token", seen[2].Authorization)

	for _, req := range seen {
		id, err := uuid.Parse(req.RequestID)
		require.NoError(t, err, "%s should carry a request ID", req.Path)
		assert.NotEqual(t, uuid.Nil, id)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var auth string
	r := chi.NewRouter()
	r.Get("/api/habitaciones", func(w http.ResponseWriter, req *http.Request) {
		auth = req.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]client.Room{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := client.New(srv.URL, staticTokens(""))
	_, err := c.Rooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestErrorTaxonomy(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/habitaciones/1", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"mensaje": "habitación no encontrada"})
	})
	r.Get("/api/habitaciones/2", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Get("/api/habitaciones/3", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"mensaje":"stack trace: secret internals"}`)
	})
	r.Get("/api/habitaciones/4", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "not json at all")
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := client.New(srv.URL, nil)

	t.Run("body message preferred", func(t *testing.T) {
		_, err := c.Room(context.Background(), 1)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "habitación no encontrada", apiErr.Message)
		assert.True(t, client.IsNotFound(err))
	})

	t.Run("generic fallback without body", func(t *testing.T) {
		_, err := c.Room(context.Background(), 2)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "not authorized", apiErr.Message)
		assert.True(t, client.IsUnauthorized(err))
	})

	t.Run("server errors hide the body", func(t *testing.T) {
		_, err := c.Room(context.Background(), 3)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "internal server error", apiErr.Message)
	})

	t.Run("unparseable body falls back", func(t *testing.T) {
		_, err := c.Room(context.Background(), 4)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid request data", apiErr.Message)
	})
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := client.New(srv.URL, nil)
	_, err := c.Rooms(context.Background())
	assert.ErrorIs(t, err, client.ErrUnreachable)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestCreateRoomMultipart(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/habitaciones", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))

		var room client.Room
		require.NoError(t, json.Unmarshal([]byte(req.FormValue("habitacion")), &room))
		assert.Equal(t, "Suite Presidencial", room.NombreHabitacion)
		assert.Equal(t, 450.0, room.Precio)

		files := req.MultipartForm.File["imagenes"]
		require.Len(t, files, 2)
		assert.Equal(t, "front.jpg", files[0].Filename)
		f, err := files[1].Open()
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x02}, content)

		room.ID = 7
		json.NewEncoder(w).Encode(room)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := client.New(srv.URL, staticTokens("tok"))
	created, err := c.CreateRoom(context.Background(), client.Room{
		NombreHabitacion: "Suite Presidencial",
		NumeroHabitacion: "701",
		TipoHabitacion:   "SUITE",
		Precio:           450,
		Comodidades:      []string{"jacuzzi"},
	}, []client.RoomImage{
		{Filename: "front.jpg", Content: []byte{0x01}},
		{Filename: "bath.jpg", Content: []byte{0x02}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestRoomsFilteredQuery(t *testing.T) {
	var query map[string]string
	r := chi.NewRouter()
	r.Get("/api/habitaciones/filter", func(w http.ResponseWriter, req *http.Request) {
		query = map[string]string{
			"tipo":         req.URL.Query().Get("tipo"),
			"fechaEntrada": req.URL.Query().Get("fechaEntrada"),
			"fechaSalida":  req.URL.Query().Get("fechaSalida"),
		}
		json.NewEncoder(w).Encode([]client.Room{{NombreHabitacion: "Doble Vista Mar"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := client.New(srv.URL, nil)
	rooms, err := c.RoomsFiltered(context.Background(), client.RoomFilter{
		Tipo:         "DOBLE",
		FechaEntrada: 1767225600000,
		FechaSalida:  1767398400000,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, map[string]string{
		"tipo":         "DOBLE",
		"fechaEntrada": "1767225600000",
		"fechaSalida":  "1767398400000",
	}, query)
}

func TestUpdateRoomStatusPatch(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/api/habitaciones/{id}/estado", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		json.NewEncoder(w).Encode(client.Room{
			ID:               5,
			EstadoHabitacion: body["estadoHabitacion"],
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := client.New(srv.URL, staticTokens("tok"))
	room, err := c.UpdateRoomStatus(context.Background(), 5, "LIMPIA")
	require.NoError(t, err)
	assert.Equal(t, "LIMPIA", room.EstadoHabitacion)
}
