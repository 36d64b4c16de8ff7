package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"mart/internal/adapters/httpapi/middleware"
	activityPort "mart/internal/ports/activity"
	followerPort "mart/internal/ports/follower"
	postPort "mart/internal/ports/post"
	userPort "mart/internal/ports/user"
)

// Inbound ports: the interfaces the controllers need from the services.

type UserUseCase interface {
	RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	Profile(ctx context.Context, username string) (*userPort.UserDTO, error)
	EditProfile(ctx context.Context, userID, username, aboutMe string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, body, userID string) (*postPort.PostDTO, error)
}

type followMutation func(ctx context.Context, followerID, targetUsername string) (*followerPort.FollowResultDTO, error)

type FollowerUseCase interface {
	Follow(ctx context.Context, followerID, targetUsername string) (*followerPort.FollowResultDTO, error)
	Unfollow(ctx context.Context, followerID, targetUsername string) (*followerPort.FollowResultDTO, error)
	Followers(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
	Following(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
}

type FeedUseCase interface {
	FeedFor(ctx context.Context, userID string, limit, offset int) ([]*postPort.PostDTO, error)
	Explore(ctx context.Context, limit, offset int) ([]*postPort.PostDTO, error)
	AuthorFeed(ctx context.Context, username string, limit, offset int) ([]*postPort.PostDTO, error)
}

// SetupRoutes wires the controllers; the use cases are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	followerUC FollowerUseCase,
	feedUC FeedUseCase,
	jwtSecret []byte,
	activityQueue activityPort.ActivityQueue,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	fc := NewFollowerController(followerUC)
	fdc := NewFeedController(feedUC)

	auth := middleware.JWTAuthMiddleware(jwtSecret, activityQueue)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	r.GET("/feed", auth, fdc.GetFeed)
	r.GET("/explore", auth, fdc.GetExplore)

	r.POST("/post", auth, pc.CreatePost)

	r.POST("/follow", auth, fc.Follow)
	r.POST("/unfollow", auth, fc.Unfollow)
	r.GET("/followers", auth, fc.GetFollowers)
	r.GET("/following", auth, fc.GetFollowing)

	r.GET("/user/:username", auth, uc.GetProfile)
	r.GET("/user/:username/posts", auth, fdc.GetAuthorFeed)
	r.PUT("/profile", auth, uc.EditProfile)

	return r
}
