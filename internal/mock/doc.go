package mock_internal

//go:generate mockgen -destination=repository.go -package=mock_internal github.com/DrGermanius/Zencoo/internal IRepository
//go:generate mockgen -destination=service.go -package=mock_internal github.com/DrGermanius/Zencoo/internal IService
