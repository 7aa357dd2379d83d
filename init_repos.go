// Package main — Repository katmanı başlatma.
//
// initRepositories, harici backend API'sine konuşan repository'leri oluşturur.
// Hepsi tek bir APIClient'ı paylaşır (aynı base URL + timeout).
package main

import (
	"github.com/akinalp/mulakat/config"
	"github.com/akinalp/mulakat/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	Auth         repository.AuthRepository
	Meet         repository.MeetRepository
	Agent        repository.AgentRepository
	Conversation repository.ConversationRepository
}

// initRepositories, API_URL boş olsa bile repository'leri oluşturur;
// eksik ayar ilk çağrıda configuration error olarak döner.
func initRepositories(cfg *config.Config) *Repositories {
	api := repository.NewAPIClient(cfg.API.BaseURL, cfg.API.Timeout)

	return &Repositories{
		Auth:         repository.NewHTTPAuthRepo(api),
		Meet:         repository.NewHTTPMeetRepo(api),
		Agent:        repository.NewHTTPAgentRepo(api),
		Conversation: repository.NewHTTPConversationRepo(api),
	}
}
