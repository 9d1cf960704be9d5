package dto

import "time"

type AppInfo struct {
	Name    string `json:"name"`
	GitRef  string `json:"gitRef"`
	GitSha  string `json:"gitSha"`
	Lineage string `json:"lineage,omitempty"`

	Started   time.Time `json:"started"`
	Uptime    string    `json:"uptime"`
	Channel   string    `json:"channel"`
	Sessions  int       `json:"sessions"`
	Downloads int       `json:"downloads"`
}

type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
