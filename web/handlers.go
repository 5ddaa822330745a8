package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/mutation"
)

func (s *Server) listUsers(c echo.Context) error {
	users := s.queries.ListUsers(c.Request().Context(), c.QueryParam("q"))

	return c.JSON(http.StatusOK, users)
}

func (s *Server) createUser(c echo.Context) error {
	var input mutation.CreateUserInput

	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.mutations.CreateUser(c.Request().Context(), input)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (s *Server) getUser(c echo.Context) error {
	user, err := s.queries.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (s *Server) updateUser(c echo.Context) error {
	var patch entities.UserPatch

	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.mutations.UpdateUser(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c echo.Context) error {
	user, err := s.mutations.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (s *Server) userPosts(c echo.Context) error {
	user, err := s.queries.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, s.queries.UserPosts(c.Request().Context(), user))
}

func (s *Server) userComments(c echo.Context) error {
	user, err := s.queries.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, s.queries.UserComments(c.Request().Context(), user))
}

func (s *Server) listPosts(c echo.Context) error {
	posts := s.queries.ListPosts(c.Request().Context(), c.QueryParam("q"))

	return c.JSON(http.StatusOK, posts)
}

func (s *Server) createPost(c echo.Context) error {
	var input mutation.CreatePostInput

	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := s.mutations.CreatePost(c.Request().Context(), input)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

func (s *Server) getPost(c echo.Context) error {
	post, err := s.queries.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, post)
}

func (s *Server) updatePost(c echo.Context) error {
	var patch entities.PostPatch

	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := s.mutations.UpdatePost(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, post)
}

func (s *Server) deletePost(c echo.Context) error {
	post, err := s.mutations.DeletePost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, post)
}

func (s *Server) postAuthor(c echo.Context) error {
	post, err := s.queries.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	author, err := s.queries.PostAuthor(c.Request().Context(), post)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, author)
}

func (s *Server) postComments(c echo.Context) error {
	post, err := s.queries.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, s.queries.PostComments(c.Request().Context(), post))
}

func (s *Server) listComments(c echo.Context) error {
	comments := s.queries.ListComments(c.Request().Context())

	return c.JSON(http.StatusOK, comments)
}

func (s *Server) createComment(c echo.Context) error {
	var input mutation.CreateCommentInput

	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := s.mutations.CreateComment(c.Request().Context(), input)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

func (s *Server) getComment(c echo.Context) error {
	comment, err := s.queries.GetComment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, comment)
}

func (s *Server) updateComment(c echo.Context) error {
	var patch entities.CommentPatch

	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := s.mutations.UpdateComment(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, comment)
}

func (s *Server) deleteComment(c echo.Context) error {
	comment, err := s.mutations.DeleteComment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, comment)
}

func (s *Server) commentAuthor(c echo.Context) error {
	comment, err := s.queries.GetComment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	author, err := s.queries.CommentAuthor(c.Request().Context(), comment)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, author)
}

func (s *Server) commentPost(c echo.Context) error {
	comment, err := s.queries.GetComment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	post, err := s.queries.CommentPost(c.Request().Context(), comment)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, post)
}

type statsResponse struct {
	Users    int `json:"users"`
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
}

func (s *Server) stats(c echo.Context) error {
	users, posts, comments := s.queries.Counts(c.Request().Context())

	return c.JSON(http.StatusOK, statsResponse{
		Users:    users,
		Posts:    posts,
		Comments: comments,
	})
}
