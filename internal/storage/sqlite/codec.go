package sqlite

import (
	"encoding/json"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

// maxRecordBytes — верхняя граница сериализованной записи региона.
// Превышение — сбой слоя хранения, а не бизнес-ошибка: запись не ретраится.
const maxRecordBytes = 1024

func encodeRecord(record any) ([]byte, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, domain.Storagef("encode record: %v", err)
	}
	if len(payload) > maxRecordBytes {
		return nil, domain.Storagef("record of %d bytes exceeds the %d byte limit", len(payload), maxRecordBytes)
	}
	return payload, nil
}

func decodeRecord(payload []byte, out any) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return domain.Storagef("decode record: %v", err)
	}
	return nil
}
