package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"idleTTL":         "30m",
			"janitorInterval": "1m",
		},
		"map": map[string]any{
			"defaultContainer": map[string]any{
				"width": 1280,
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"snapshot": map[string]any{
			"dataDir": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_IDLETTL", want: "session.idleTTL"},
		{envKey: "SESSION_JANITOR_INTERVAL", want: "session.janitor.interval"},
		{envKey: "MAP_DEFAULTCONTAINER_WIDTH", want: "map.defaultContainer.width"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SNAPSHOT_DATADIR", want: "snapshot.dataDir"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
