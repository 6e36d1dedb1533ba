package dispatch

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// recordKey ключ Redis-множества с ID бронирований,
// по которым инвойс был отправлен хотя бы один раз
const recordKey = "invoices:dispatched"

// Repository реестр отправленных инвойсов поверх Redis.
// Множество append-only: однажды добавленный ID только
// переподтверждается повторными SADD и никогда не удаляется.
// Это единственный источник истины "инвойс отправлялся" между
// рестартами процесса.
type Repository struct {
	client *redis.Client
}

// NewRepository создает новый экземпляр реестра отправленных инвойсов
func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// Add добавляет ID бронирования в реестр
// Повторное добавление уже существующего ID не является ошибкой
func (r *Repository) Add(ctx context.Context, bookingID int64) error {
	if err := r.client.SAdd(ctx, recordKey, bookingID).Err(); err != nil {
		return fmt.Errorf("%w: Add - sadd booking id=%d: %v", ErrStore, bookingID, err)
	}
	return nil
}

// Contains проверяет наличие ID бронирования в реестре
func (r *Repository) Contains(ctx context.Context, bookingID int64) (bool, error) {
	exists, err := r.client.SIsMember(ctx, recordKey, bookingID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Contains - sismember booking id=%d: %v", ErrStore, bookingID, err)
	}
	return exists, nil
}

// LoadAll загружает весь реестр (для прогрева кэша при старте)
func (r *Repository) LoadAll(ctx context.Context) (map[int64]struct{}, error) {
	members, err := r.client.SMembers(ctx, recordKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - smembers: %v", ErrStore, err)
	}

	record := make(map[int64]struct{}, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: LoadAll - member %q: %v", ErrBadRecord, member, err)
		}
		record[id] = struct{}{}
	}

	return record, nil
}
