package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/iudanet/filmoteka/internal/client/api"
	"github.com/iudanet/filmoteka/internal/client/auth"
	"github.com/iudanet/filmoteka/internal/client/iocli"
	"github.com/iudanet/filmoteka/internal/client/movies"
)

// Cli связывает команды с сессией и сервисом каталога
type Cli struct {
	session *auth.Session
	movies  *movies.Service
	io      iocli.IO
}

func New(session *auth.Session, moviesService *movies.Service, io iocli.IO) *Cli {
	return &Cli{
		session: session,
		movies:  moviesService,
		io:      io,
	}
}

// Run выполняет одну команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "update-profile":
		return c.runUpdateProfile(ctx)
	case "movies":
		return c.runMovies(ctx, args)
	case "search":
		return c.runSearch(ctx, args)
	case "movie":
		return c.runMovie(ctx, args)
	case "comments":
		return c.runComments(ctx, args)
	case "comment":
		return c.runComment(ctx, args)
	case "rate":
		return c.runRate(ctx, args)
	case "like":
		return c.runLike(ctx, args)
	case "favorites":
		return c.runFavorites(ctx, args)
	case "favorite":
		return c.runFavorite(ctx, args)
	case "unfavorite":
		return c.runUnfavorite(ctx, args)
	case "upload-video":
		return c.runUploadVideo(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// printError разворачивает нормализованную ошибку API: сообщение плюс
// пополевые ошибки валидации, если они есть
func (c *Cli) printError(err error) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		c.io.Printf("Error: %v\n", err)
		return
	}

	c.io.Printf("Error: %s\n", apiErr.Message)
	if len(apiErr.Errors) == 0 {
		return
	}

	// Стабильный порядок полей для вывода
	fields := make([]string, 0, len(apiErr.Errors))
	for field := range apiErr.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, msg := range apiErr.Errors[field] {
			c.io.Printf("  %s: %s\n", field, msg)
		}
	}
}

func PrintUsage() {
	fmt.Println("Filmoteka Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  filmoteka [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8000)")
	fmt.Println("  --db PATH        Path to local database (default: filmoteka-client.db)")
	fmt.Println("  --timeout DUR    Request timeout (default: 30s)")
	fmt.Println()
	fmt.Println("Auth commands:")
	fmt.Println("  register                     Create an account")
	fmt.Println("  login                        Sign in with email and password")
	fmt.Println("  logout                       Sign out and clear the local session")
	fmt.Println("  status                       Show authentication status")
	fmt.Println("  profile                      Show current user profile")
	fmt.Println("  update-profile               Interactively edit profile fields")
	fmt.Println()
	fmt.Println("Catalog commands:")
	fmt.Println("  movies [PAGE]                List movies")
	fmt.Println("  search QUERY [PAGE]          Search movies by title/description")
	fmt.Println("  movie ID                     Show movie details")
	fmt.Println("  comments MOVIE_ID [PAGE]     List comments for a movie")
	fmt.Println("  comment MOVIE_ID TEXT        Add a comment")
	fmt.Println("  rate MOVIE_ID SCORE          Rate a movie (1-5)")
	fmt.Println("  like movie|comment ID        Toggle a like")
	fmt.Println("  favorites [PAGE]             List your favorite movies")
	fmt.Println("  favorite MOVIE_ID            Add a movie to favorites")
	fmt.Println("  unfavorite FAVORITE_ID       Remove a favorites entry")
	fmt.Println("  upload-video MOVIE_ID FILE   Upload movie video (staff only)")
}
