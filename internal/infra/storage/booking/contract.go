package booking

import "github.com/m04kA/SMC-AssistantService/pkg/txmanager"

// Переиспользуем интерфейс executor из txmanager для работы с БД
// Позволяет репозиторию прозрачно работать как с *sql.DB, так и с *sql.Tx
type DBExecutor = txmanager.Executor
