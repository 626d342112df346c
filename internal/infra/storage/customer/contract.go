package customer

import "github.com/m04kA/SMC-AssistantService/pkg/txmanager"

// Переиспользуем интерфейс executor из txmanager для работы с БД
type DBExecutor = txmanager.Executor
