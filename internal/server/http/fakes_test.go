package httpserver

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/avekshin/microfeed/internal/errs"
	"github.com/avekshin/microfeed/internal/model"
	"github.com/avekshin/microfeed/internal/repository"
	"github.com/avekshin/microfeed/internal/service"
)

// fakeHasher is a cheap stand-in for the hashing pool: the "hash" is the
// password reversed.
type fakeHasher struct{}

var _ service.PasswordHasher = (*fakeHasher)(nil)

func reverse(s string) []byte {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func (f *fakeHasher) Hash(_ context.Context, password string) ([]byte, error) {
	return reverse(password), nil
}

func (f *fakeHasher) Verify(_ context.Context, password string, expected []byte) (bool, error) {
	return string(reverse(password)) == string(expected), nil
}

type fakeUsers struct {
	byID map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*model.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	for _, ex := range f.byID {
		if ex.Username == u.Username || ex.Email == u.Email {
			return errs.ErrConflict
		}
	}
	u.CreatedAt = time.Now()
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) List(_ context.Context, limit, offset int) ([]model.User, error) {
	out := make([]model.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, *u)
	}
	if offset >= len(out) {
		return []model.User{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUsers) UpdateBio(_ context.Context, id uuid.UUID, bio *string) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	u.Bio = bio
	c := *u
	return &c, nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakePosts struct {
	byID map[uuid.UUID]*model.Post
}

var _ repository.PostRepository = (*fakePosts)(nil)

func newFakePosts() *fakePosts {
	return &fakePosts{byID: map[uuid.UUID]*model.Post{}}
}

func (f *fakePosts) Create(_ context.Context, p *model.Post) error {
	p.CreatedAt = time.Now()
	cpy := *p
	f.byID[p.ID] = &cpy
	return nil
}

func (f *fakePosts) List(_ context.Context, limit, offset int) ([]model.Post, error) {
	out := make([]model.Post, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, *p)
	}
	if offset >= len(out) {
		return []model.Post{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePosts) GetByID(_ context.Context, id uuid.UUID) (*model.Post, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (f *fakePosts) AuthorID(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	p, ok := f.byID[id]
	if !ok {
		return uuid.Nil, errs.ErrNotFound
	}
	return p.AuthorID, nil
}

func (f *fakePosts) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakePosts) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeComments struct {
	posts  *fakePosts
	byPost map[uuid.UUID][]model.Comment
}

var _ repository.CommentRepository = (*fakeComments)(nil)

func newFakeComments(posts *fakePosts) *fakeComments {
	return &fakeComments{posts: posts, byPost: map[uuid.UUID][]model.Comment{}}
}

func (f *fakeComments) Create(_ context.Context, c *model.Comment) error {
	// Emulates the foreign-key constraint on post_id.
	if _, ok := f.posts.byID[c.PostID]; !ok {
		return errs.ErrNotFound
	}
	c.CreatedAt = time.Now()
	f.byPost[c.PostID] = append(f.byPost[c.PostID], *c)
	return nil
}

func (f *fakeComments) ListForPost(_ context.Context, postID uuid.UUID) ([]model.Comment, error) {
	return append([]model.Comment(nil), f.byPost[postID]...), nil
}

type likeKey struct{ user, post uuid.UUID }

type fakeLikes struct {
	posts *fakePosts
	set   map[likeKey]struct{}
}

var _ repository.LikeRepository = (*fakeLikes)(nil)

func newFakeLikes(posts *fakePosts) *fakeLikes {
	return &fakeLikes{posts: posts, set: map[likeKey]struct{}{}}
}

func (f *fakeLikes) Create(_ context.Context, userID, postID uuid.UUID) error {
	if _, ok := f.posts.byID[postID]; !ok {
		return errs.ErrNotFound
	}
	k := likeKey{userID, postID}
	if _, dup := f.set[k]; dup {
		return errs.ErrConflict
	}
	f.set[k] = struct{}{}
	return nil
}

func (f *fakeLikes) Delete(_ context.Context, userID, postID uuid.UUID) error {
	k := likeKey{userID, postID}
	if _, ok := f.set[k]; !ok {
		return errs.ErrNotFound
	}
	delete(f.set, k)
	return nil
}
