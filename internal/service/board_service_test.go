package service

import (
	"errors"
	"testing"

	"salon_web/internal/model"

	"gorm.io/gorm"
)

func TestCreatePostValidation(t *testing.T) {
	db := newTestDB(t)
	member := seedUser(t, db, model.RoleMember)
	svc := NewBoardService(db)

	if _, err := svc.CreatePost(member.ID, "", "body"); err == nil {
		t.Fatal("missing title accepted")
	}
	if _, err := svc.CreatePost(member.ID, "title", ""); err == nil {
		t.Fatal("missing content accepted")
	}

	post, err := svc.CreatePost(member.ID, "hello", "first post")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.AuthorID != member.ID {
		t.Fatalf("author: got %d, want %d", post.AuthorID, member.ID)
	}
}

func TestCreateCommentTargets(t *testing.T) {
	db := newTestDB(t)
	member := seedUser(t, db, model.RoleMember)
	svc := NewBoardService(db)

	post, err := svc.CreatePost(member.ID, "hello", "first post")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	// 空白评论拒绝
	if _, err := svc.CreateComment(member.ID, "   ", &post.ID, nil); err == nil {
		t.Fatal("blank comment accepted")
	}

	// 帖子和内容互斥
	cid := uint64(1)
	if _, err := svc.CreateComment(member.ID, "hi", &post.ID, &cid); !errors.Is(err, ErrCommentTarget) {
		t.Fatalf("both targets: got %v, want ErrCommentTarget", err)
	}

	// 目标不存在
	missing := uint64(9999)
	if _, err := svc.CreateComment(member.ID, "hi", &missing, nil); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing post: got %v, want ErrRecordNotFound", err)
	}

	// 正常路径，首尾空白截掉
	comment, err := svc.CreateComment(member.ID, "  hi there  ", &post.ID, nil)
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.Content != "hi there" {
		t.Fatalf("content: got %q", comment.Content)
	}
}

func TestGetPostWithComments(t *testing.T) {
	db := newTestDB(t)
	member := seedUser(t, db, model.RoleMember)
	svc := NewBoardService(db)

	post, err := svc.CreatePost(member.ID, "hello", "first post")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if _, err := svc.CreateComment(member.ID, "reply", &post.ID, nil); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	got, err := svc.GetPost(post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if len(got.Comments) != 1 || got.Comments[0].Content != "reply" {
		t.Fatalf("comments: %+v", got.Comments)
	}
	if got.Author == nil || got.Author.ID != member.ID {
		t.Fatal("author not preloaded")
	}
}
