package movies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/filmoteka/internal/validation"
	pkgapi "github.com/iudanet/filmoteka/pkg/api"
)

// Пути endpoint'ов каталога
const (
	pathMovies    = "/api/movies/"
	pathSearch    = "/api/movies/search/"
	pathLike      = "/api/movies/like/"
	pathFavorites = "/api/movies/favorites/"
)

// Gateway defines what the service needs from the API client.
// Авторизация, повторы и нормализация ошибок — целиком забота шлюза;
// адаптеры только переводят доменные вызовы в HTTP.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Put(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string) error
	Upload(ctx context.Context, method, path, field, filename string, file io.Reader, result any) error
}

// Service предоставляет операции каталога фильмов.
// Сервис stateless: никакого кэша, никакого доступа к токенам,
// ошибки шлюза пробрасываются без изменений.
type Service struct {
	gw Gateway
}

// NewService creates a movie catalog service over the API gateway
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// SearchParams описывает параметры поиска фильмов
type SearchParams struct {
	Query    string
	Genre    string
	Ordering string
	YearFrom int
	YearTo   int
	Page     int
}

// List возвращает страницу каталога.
// page и pageSize <= 0 означают значения сервера по умолчанию.
func (s *Service) List(ctx context.Context, page, pageSize int) (*pkgapi.Page[pkgapi.Movie], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	var result pkgapi.Page[pkgapi.Movie]
	if err := s.gw.Get(ctx, pathMovies, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search ищет фильмы по запросу, жанру и диапазону лет
func (s *Service) Search(ctx context.Context, params SearchParams) (*pkgapi.Page[pkgapi.Movie], error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("query", params.Query)
	}
	if params.Genre != "" {
		query.Set("genre", params.Genre)
	}
	if params.YearFrom > 0 {
		query.Set("year_from", strconv.Itoa(params.YearFrom))
	}
	if params.YearTo > 0 {
		query.Set("year_to", strconv.Itoa(params.YearTo))
	}
	if params.Ordering != "" {
		query.Set("ordering", params.Ordering)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}

	var result pkgapi.Page[pkgapi.Movie]
	if err := s.gw.Get(ctx, pathSearch, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get возвращает один фильм по id
func (s *Service) Get(ctx context.Context, id int64) (*pkgapi.Movie, error) {
	var result pkgapi.MovieResponse
	if err := s.gw.Get(ctx, moviePath(id, ""), nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// Rate выставляет фильму оценку 1-5 от имени текущего пользователя.
// Повторная оценка перезаписывает предыдущую.
func (s *Service) Rate(ctx context.Context, id int64, score int) (*pkgapi.Rating, error) {
	if err := validation.ValidateScore(score); err != nil {
		return nil, err
	}

	var result pkgapi.RatingResponse
	if err := s.gw.Post(ctx, moviePath(id, "rate/"), pkgapi.RateRequest{Score: score}, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// Comments возвращает страницу комментариев верхнего уровня к фильму
func (s *Service) Comments(ctx context.Context, id int64, page int) (*pkgapi.Page[pkgapi.Comment], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var result pkgapi.Page[pkgapi.Comment]
	if err := s.gw.Get(ctx, moviePath(id, "comments/"), query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateComment добавляет комментарий к фильму.
// parent != nil делает комментарий ответом на существующий.
func (s *Service) CreateComment(ctx context.Context, id int64, text string, parent *int64) (*pkgapi.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text cannot be empty")
	}

	req := pkgapi.CommentCreateRequest{Text: text, Parent: parent}
	var result pkgapi.CommentResponse
	if err := s.gw.Post(ctx, moviePath(id, "comments/"), req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// ToggleLike переключает лайк фильма или комментария.
// contentType — "movie" или "comment".
func (s *Service) ToggleLike(ctx context.Context, contentType string, objectID int64) (*pkgapi.LikeResponse, error) {
	if contentType != pkgapi.LikeTargetMovie && contentType != pkgapi.LikeTargetComment {
		return nil, fmt.Errorf("content type must be %q or %q", pkgapi.LikeTargetMovie, pkgapi.LikeTargetComment)
	}

	req := pkgapi.LikeRequest{ContentType: contentType, ObjectID: objectID}
	var result pkgapi.LikeResponse
	if err := s.gw.Post(ctx, pathLike, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Favorites возвращает страницу избранного текущего пользователя,
// свежие записи первыми
func (s *Service) Favorites(ctx context.Context, page int) (*pkgapi.Page[pkgapi.Favorite], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var result pkgapi.Page[pkgapi.Favorite]
	if err := s.gw.Get(ctx, pathFavorites, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddFavorite добавляет фильм в избранное.
// Повторное добавление сервер отвергает с ошибкой валидации.
func (s *Service) AddFavorite(ctx context.Context, movieID int64) (*pkgapi.Favorite, error) {
	req := pkgapi.FavoriteRequest{MovieID: movieID}
	var result pkgapi.FavoriteResponse
	if err := s.gw.Post(ctx, pathFavorites, req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// RemoveFavorite убирает запись избранного по ее id (не по id фильма)
func (s *Service) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("%s%d/", pathFavorites, favoriteID))
}

// UploadVideo загружает видеофайл фильма (multipart, только для staff)
func (s *Service) UploadVideo(ctx context.Context, id int64, filename string, file io.Reader) (*pkgapi.Movie, error) {
	var result pkgapi.MovieResponse
	err := s.gw.Upload(ctx, http.MethodPut, moviePath(id, "video/"), "video", filename, file, &result)
	if err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func moviePath(id int64, suffix string) string {
	return fmt.Sprintf("%s%d/%s", pathMovies, id, suffix)
}
