package redis

import (
	"context"
	"errors"
	"fmt"
	"sculink/internal/types"
	"sort"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	sectionKeyNameTemplate = "_sculink_section_%s"
)

// SectionStore keeps one JSON document per section under its own key.
type SectionStore struct {
	cli *redis.Client
}

func NewSectionStore(cli *redis.Client) *SectionStore {
	return &SectionStore{cli: cli}
}

func (s *SectionStore) GetSection(ctx context.Context, name string) (types.Section, error) {
	out := s.cli.Get(ctx, getSectionKey(name))
	if errors.Is(out.Err(), redis.Nil) {
		return types.Section{}, types.ErrNotFound
	}
	if out.Err() != nil {
		return types.Section{}, out.Err()
	}
	var sec types.Section
	if err := json.Unmarshal([]byte(out.Val()), &sec); err != nil {
		return types.Section{}, err
	}
	return sec, nil
}

func (s *SectionStore) ListSections(ctx context.Context) ([]types.Section, error) {
	keys, err := s.keys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)
	vals, err := s.cli.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	sections := make([]types.Section, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// deleted between KEYS and MGET
			continue
		}
		var sec types.Section
		if err := json.Unmarshal([]byte(raw), &sec); err != nil {
			log.WithError(err).WithField("key", keys[i]).Warn("skipping undecodable section")
			continue
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

func (s *SectionStore) PutSection(ctx context.Context, section types.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}
	out, err := json.Marshal(section)
	if err != nil {
		return err
	}
	return s.cli.Set(ctx, getSectionKey(section.Name), string(out), 0).Err()
}

func (s *SectionStore) DeleteSection(ctx context.Context, name string) error {
	return s.cli.Del(ctx, getSectionKey(name)).Err()
}

func (s *SectionStore) ClearAll(ctx context.Context) error {
	keys, err := s.keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.cli.Del(ctx, keys...).Err()
}

func (s *SectionStore) keys(ctx context.Context) ([]string, error) {
	out := s.cli.Keys(ctx, getSectionKey("*"))
	if out.Err() != nil {
		return nil, out.Err()
	}
	return out.Val(), nil
}

func getSectionKey(name string) string {
	return fmt.Sprintf(sectionKeyNameTemplate, name)
}
