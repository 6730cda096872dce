package storage

import (
	"encoding/json"
	"fmt"

	"github.com/renato0307/bancada/internal/domain"
)

// recentKey returns the local_kv key holding a recent list
func recentKey(kind domain.RecentKind) string {
	if kind == domain.RecentFiles {
		return KeyRecentFiles
	}
	return KeyRecentFolders
}

// recentListFromValue decodes a stored JSON array; an empty value is an empty list
func recentListFromValue(value string) (domain.RecentList, error) {
	list := domain.RecentList{}
	if value == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, fmt.Errorf("failed to decode recent list: %w", err)
	}
	if len(list) > domain.MaxRecentItems {
		list = list[:domain.MaxRecentItems]
	}
	return list, nil
}

// recentListToValue encodes a list as a JSON array, never "null"
func recentListToValue(list domain.RecentList) (string, error) {
	if list == nil {
		list = domain.RecentList{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode recent list: %w", err)
	}
	return string(data), nil
}
