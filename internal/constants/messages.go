package constants

// User-facing messages, kept in the language of the origin system so the
// client matches what the remote store already sends.
const (
	MsgTaskNotFound  = "Tarefa não encontrada."
	MsgConfirmDelete = "Tem certeza que deseja excluir esta tarefa?"

	MsgCreated = "Tarefa criada com sucesso!"
	MsgUpdated = "Tarefa atualizada com sucesso!"
	MsgDeleted = "Tarefa excluída com sucesso!"

	MsgErrList   = "Erro ao carregar tarefas. Tente novamente mais tarde."
	MsgErrLoad   = "Erro ao carregar tarefa. Tente novamente mais tarde."
	MsgErrCreate = "Erro ao criar tarefa. Tente novamente mais tarde."
	MsgErrUpdate = "Erro ao atualizar tarefa. Tente novamente mais tarde."
	MsgErrDelete = "Erro ao excluir tarefa. Tente novamente mais tarde."

	MsgTitleRequired = "O título é obrigatório."
	MsgTitleTooLong  = "O título deve ter no máximo 100 caracteres."
)
