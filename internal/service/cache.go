package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campushub/teacher-service/internal/dto"
	"github.com/campushub/teacher-service/pkg/logger"
	"github.com/campushub/teacher-service/pkg/redis"
)

const (
	directoryListKey      = "teachers:list"
	directoryTeacherKeyFm = "teachers:id:%d"
	directoryKeyPattern   = "teachers:*"
)

// DirectoryCache is a read-through cache in front of the teacher
// directory's list and get reads. A nil cache, or one backed by a
// disabled Redis client, degrades to pass-through.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{
		client: client,
		ttl:    ttl,
	}
}

func (d *DirectoryCache) active() bool {
	return d != nil && d.client != nil && d.client.IsEnabled()
}

// GetList returns the cached directory listing, or nil on a miss.
func (d *DirectoryCache) GetList(ctx context.Context) []dto.TeacherResponse {
	if !d.active() {
		return nil
	}

	data, err := d.client.Get(ctx, directoryListKey)
	if err != nil {
		return nil
	}

	var teachers []dto.TeacherResponse
	if err := json.Unmarshal(data, &teachers); err != nil {
		logger.WarnWithContext(ctx, "Dropping undecodable directory cache entry").
			String("key", directoryListKey).
			Err(err).
			Log()
		_ = d.client.Delete(ctx, directoryListKey)
		return nil
	}

	return teachers
}

// SetList stores the directory listing. Cache errors are logged and
// swallowed; the response was already computed.
func (d *DirectoryCache) SetList(ctx context.Context, teachers []dto.TeacherResponse) {
	if !d.active() {
		return
	}

	data, err := json.Marshal(teachers)
	if err != nil {
		return
	}
	_ = d.client.Set(ctx, directoryListKey, data, d.ttl)
}

// GetTeacher returns one cached directory entry, or nil on a miss.
func (d *DirectoryCache) GetTeacher(ctx context.Context, id uint) *dto.TeacherResponse {
	if !d.active() {
		return nil
	}

	data, err := d.client.Get(ctx, fmt.Sprintf(directoryTeacherKeyFm, id))
	if err != nil {
		return nil
	}

	var teacher dto.TeacherResponse
	if err := json.Unmarshal(data, &teacher); err != nil {
		_ = d.client.Delete(ctx, fmt.Sprintf(directoryTeacherKeyFm, id))
		return nil
	}

	return &teacher
}

// SetTeacher stores one directory entry.
func (d *DirectoryCache) SetTeacher(ctx context.Context, teacher *dto.TeacherResponse) {
	if !d.active() || teacher == nil {
		return
	}

	data, err := json.Marshal(teacher)
	if err != nil {
		return
	}
	_ = d.client.Set(ctx, fmt.Sprintf(directoryTeacherKeyFm, teacher.ID), data, d.ttl)
}

// Invalidate drops every directory key. Called after any write that
// changes what the directory shows: registration, update, deactivation.
func (d *DirectoryCache) Invalidate(ctx context.Context) {
	if !d.active() {
		return
	}

	if err := d.client.DeleteByPattern(ctx, directoryKeyPattern); err != nil {
		logger.WarnWithContext(ctx, "Failed to invalidate directory cache").
			Err(err).
			Log()
	}
}
