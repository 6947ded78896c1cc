package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/pkg/apperror"
	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/internal/repository/specification"
	"luma-companion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	communityPostsCacheKey = "community:posts"
	communityPostsCacheTTL = 60 * time.Second
)

var (
	anonymousAdjectives = []string{"Agile", "Bright", "Creative", "Daring", "Eager", "Flying", "Gentle", "Happy", "Jolly", "Kind"}
	anonymousNouns      = []string{"Panda", "Tiger", "Lion", "Bear", "Wolf", "Eagle", "Shark", "Dragon", "Unicorn", "Phoenix"}
)

type ICommunityService interface {
	GetPosts(ctx context.Context) ([]*dto.PostResponse, error)
	CreatePost(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	Vote(ctx context.Context, userId uuid.UUID, postId uuid.UUID, req *dto.VoteRequest) (*dto.VoteResponse, error)
}

type communityService struct {
	uowFactory  unitofwork.RepositoryFactory
	redisClient *redis.Client
	log         logger.ILogger
}

func NewCommunityService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client, log logger.ILogger) ICommunityService {
	return &communityService{
		uowFactory:  uowFactory,
		redisClient: redisClient,
		log:         log,
	}
}

// generateAnonymousUsername produces a throwaway handle so posts never
// expose the author's identity.
func generateAnonymousUsername() string {
	adjective := anonymousAdjectives[rand.Intn(len(anonymousAdjectives))]
	noun := anonymousNouns[rand.Intn(len(anonymousNouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, rand.Intn(100))
}

func postResponse(post *entity.CommunityPost) *dto.PostResponse {
	return &dto.PostResponse{
		Id:                post.Id,
		AnonymousUsername: post.AnonymousUsername,
		Content:           post.Content,
		Upvotes:           post.Upvotes,
		Downvotes:         post.Downvotes,
		CreatedAt:         post.CreatedAt,
	}
}

func (s *communityService) GetPosts(ctx context.Context) ([]*dto.PostResponse, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, communityPostsCacheKey).Result()
		if err == nil {
			var responses []*dto.PostResponse
			if err := json.Unmarshal([]byte(cached), &responses); err == nil {
				return responses, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("community", "posts cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	posts, err := uow.CommunityPostRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	counts, err := uow.CommunityVoteRepository().CountByPost(ctx)
	if err != nil {
		return nil, err
	}
	countsByPost := make(map[uuid.UUID]struct{ up, down int64 }, len(counts))
	for _, c := range counts {
		countsByPost[c.PostId] = struct{ up, down int64 }{c.Upvotes, c.Downvotes}
	}

	responses := make([]*dto.PostResponse, len(posts))
	for i, post := range posts {
		if c, ok := countsByPost[post.Id]; ok {
			post.Upvotes = c.up
			post.Downvotes = c.down
		}
		responses[i] = postResponse(post)
	}

	s.cachePosts(ctx, responses)
	return responses, nil
}

func (s *communityService) CreatePost(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post := &entity.CommunityPost{
		Id:                uuid.New(),
		UserId:            userId,
		AnonymousUsername: generateAnonymousUsername(),
		Content:           req.Content,
		CreatedAt:         time.Now(),
	}

	if err := uow.CommunityPostRepository().Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidatePostsCache(ctx)
	return postResponse(post), nil
}

func (s *communityService) Vote(ctx context.Context, userId uuid.UUID, postId uuid.UUID, req *dto.VoteRequest) (*dto.VoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.CommunityPostRepository().FindOne(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.New(apperror.KindNotFound, "post not found")
	}

	voteType := entity.VoteType(req.VoteType)
	existing, err := uow.CommunityVoteRepository().FindOne(ctx,
		specification.Filter("post_id", postId),
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	var status string
	switch {
	case existing == nil:
		vote := &entity.CommunityVote{
			Id:        uuid.New(),
			PostId:    postId,
			UserId:    userId,
			VoteType:  voteType,
			CreatedAt: time.Now(),
		}
		if err := uow.CommunityVoteRepository().Create(ctx, vote); err != nil {
			return nil, err
		}
		status = "added"
	case existing.VoteType == voteType:
		if err := uow.CommunityVoteRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		status = "removed"
	default:
		existing.VoteType = voteType
		if err := uow.CommunityVoteRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		status = "changed"
	}

	s.invalidatePostsCache(ctx)
	return &dto.VoteResponse{Status: status}, nil
}

func (s *communityService) cachePosts(ctx context.Context, responses []*dto.PostResponse) {
	if s.redisClient == nil {
		return
	}
	payload, err := json.Marshal(responses)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, communityPostsCacheKey, payload, communityPostsCacheTTL).Err(); err != nil {
		s.log.Warn("community", "posts cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *communityService) invalidatePostsCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, communityPostsCacheKey).Err(); err != nil {
		s.log.Warn("community", "posts cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
