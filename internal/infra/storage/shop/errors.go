package shop

import "errors"

var (
	// ErrConfigNotFound возвращается, когда настройки барбершопа еще не сохранены
	ErrConfigNotFound = errors.New("shop.repository: shop config not found")

	// ErrAutomationNotFound возвращается, когда настройки автоматизации еще не сохранены
	ErrAutomationNotFound = errors.New("shop.repository: automation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shop.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shop.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shop.repository: failed to scan row")
)
