package dto

import "time"

type SessionList struct {
	Total    int       `json:"total"`
	Sessions []Session `json:"sessions"`
}

type Session struct {
	ID                           uint64    `json:"id"`
	Created                      time.Time `json:"created"`
	Ephemeral                    bool      `json:"ephemeral"`
	Cached                       bool      `json:"cached"`
	ResourceLoadStatistics       bool      `json:"resourceLoadStatistics"`
	ThirdPartyCookieBlockingMode string    `json:"thirdPartyCookieBlockingMode"`
	Tasks                        int       `json:"tasks"`
	KeptAliveLoads               int       `json:"keptAliveLoads"`
	Invalidated                  bool      `json:"invalidated,omitempty"`
}
