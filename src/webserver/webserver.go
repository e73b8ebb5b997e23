// Package webserver contains the HTTP server which serves the MelodyHub API.
package webserver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/ironsmile/melodyhub/src/audio"
	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/config"
	"github.com/ironsmile/melodyhub/src/deezer"
	"github.com/ironsmile/melodyhub/src/enrich"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// Server represents our webserver. It will be controlled from here
type Server struct {

	// Configuration of this server
	cfg config.Config

	// WG used in Server.Wait to sync with server's end
	wg sync.WaitGroup

	// The actual http.Server doing the HTTP work
	httpSrv *http.Server

	// The server's net.Listener. Used in the Server.Addr func
	listener net.Listener

	// templatesFS is the file system with the HTML templates.
	templatesFS fs.FS

	store    catalog.Store
	local    *audio.LocalStore
	enricher *enrich.Enricher
	resolver *audio.Resolver
}

// Serve starts listening on the configured address and serves HTTP requests in a
// separate goroutine. Trying to call this method more than once for the same
// server will result in panic.
func (srv *Server) Serve() error {
	if srv.httpSrv != nil {
		panic("Second Server.Serve call for the same server")
	}

	handler, err := srv.Handler()
	if err != nil {
		return fmt.Errorf("creating HTTP handler: %w", err)
	}

	srv.httpSrv = &http.Server{
		Addr:           srv.cfg.Listen,
		Handler:        handler,
		ReadTimeout:    time.Duration(srv.cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(srv.cfg.WriteTimeout) * time.Second,
		MaxHeaderBytes: srv.cfg.MaxHeadersSize,
	}

	lsn, err := net.Listen("tcp", srv.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", srv.cfg.Listen, err)
	}
	srv.listener = lsn

	log.Printf("Webserver started on %s.\n", lsn.Addr())

	srv.wg.Add(1)
	go srv.serveGoroutine(lsn)

	return nil
}

func (srv *Server) serveGoroutine(lsn net.Listener) {
	defer srv.wg.Done()

	reason := srv.httpSrv.Serve(lsn)
	log.Println("Webserver stopped.")

	if reason != nil && !errors.Is(reason, http.ErrServerClosed) {
		log.Printf("Reason: %s\n", reason)
	}
}

// Addr returns the address the server listens on. It is nil before Serve.
func (srv *Server) Addr() net.Addr {
	if srv.listener == nil {
		return nil
	}
	return srv.listener.Addr()
}

// Stop stops the webserver gracefully. Requests in flight are given until `ctx`
// is done to finish.
func (srv *Server) Stop(ctx context.Context) error {
	if srv.httpSrv == nil {
		return nil
	}
	return srv.httpSrv.Shutdown(ctx)
}

// Wait syncs whoever called this with the server's stop
func (srv *Server) Wait() {
	srv.wg.Wait()
}

// Handler returns the http.Handler with every API endpoint and all the
// middlewares wrapped around them.
func (srv *Server) Handler() (http.Handler, error) {
	allTpls, err := NewFSTemplates(srv.templatesFS).All()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	router := mux.NewRouter()
	router.StrictSlash(true)
	router.UseEncodedPath()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		webutils.NotFound(w, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			webutils.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		},
	)

	handlers := map[string]http.Handler{
		EndpointIndex:        NewTemplateHandler(allTpls.index, "MelodyHub"),
		EndpointAbout:        NewAboutHandler(),
		EndpointHub:          NewHubHandler(srv.store, srv.enricher),
		EndpointArtist:       NewArtistHandler(srv.store, srv.enricher),
		EndpointArtistYear:   NewArtistYearHandler(srv.store),
		EndpointArtistAlbum:  NewAlbumHandler(srv.store, srv.enricher),
		EndpointGenreArtists: NewGenreArtistsHandler(srv.store),
		EndpointSong:         NewSongHandler(srv.store, srv.resolver, srv.enricher),
		EndpointStream:       NewStreamHandler(srv.local),
	}

	for path, handler := range handlers {
		router.Handle(path, handler).Methods(APIMethods[path]...)
	}

	// Panics are recovered inside the gzip handler so that the error response is
	// written before the gzip stream is closed.
	var handler http.Handler = NewRecoverHandler(router)

	if srv.cfg.Gzip {
		handler = NewGzipHandler(handler, []string{endpointStreamPrefix})
	}

	handler = NewCORSHandler(handler)
	handler = NewAccessHandler(handler)

	return handler, nil
}

// NewServer returns a new Server using the supplied configuration cfg. The
// returned server is ready and calling its Serve method will start it. A nil
// finder disables every remote lookup.
func NewServer(
	cfg config.Config,
	templatesFS fs.FS,
	store catalog.Store,
	local *audio.LocalStore,
	finder deezer.Finder,
) *Server {
	return &Server{
		cfg:         cfg,
		templatesFS: templatesFS,
		store:       store,
		local:       local,
		enricher:    enrich.New(finder, cfg.EnrichConcurrency),
		resolver:    audio.NewResolver(local, finder),
	}
}
