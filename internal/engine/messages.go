// FILE: internal/engine/messages.go
// All user-visible copy lives here, decoupled from dispatch.
package engine

const (
	msgGreeting = ", привет! Я умный чат-бот, который умеет делать таких же умных чат-ботов для разных компаний.\n" +
		"Выбери, чем занимается твоя компания:"
	msgIndustryInvalid = "Пожалуйста, выберите отрасль из предложенных вариантов."
	msgChooseBotType   = "Выбери тип бота, который необходим для вашего бизнеса:"
	msgBotTypeInvalid  = "Пожалуйста, выберите тип бота из предложенных вариантов."
	msgAskDisplayName  = "Придумайте название вашего бота — оно будет отображаться в диалогах пользователей и может быть любым."
	msgAskBotUsername  = "Придумайте уникальное имя пользователя бота, написанное латиницей и содержащее слово 'bot'. " +
		"Минимальная длина — 5 символов, максимальная — 32."
	msgBotUsernameInvalid = "Имя пользователя не соответствует требованиям. Пожалуйста, попробуйте снова."
	msgRatingInvalid      = "Пожалуйста, введите число от 1 до 5."
	msgThanks             = "Спасибо за вашу оценку! Мы свяжемся с вами в ближайшее время."
	msgSendStart          = "Отправьте /start, чтобы начать оформление заявки."
	msgPersistFailed      = "Не удалось сохранить данные. Пожалуйста, попробуйте ещё раз."

	msgAdminDenied        = "У вас нет прав доступа к админ-панели."
	msgAdminWelcome       = "Добро пожаловать в админ-панель. Выберите действие:"
	msgAdminChooseFromMenu = "Пожалуйста, выберите действие из меню."
	msgAskNewIndustry     = "Введите название новой отрасли:"
	msgAskNewBotType      = "Введите название нового типа бота:"
	msgIndustriesEmpty    = "Список отраслей пуст."
	msgBotTypesEmpty      = "Список типов ботов пуст."
	msgChooseIndustryToRemove = "Выберите отрасль для удаления:"
	msgChooseBotTypeToRemove  = "Выберите тип бота для удаления:"
	msgIndustryNotFound   = "Отрасль не найдена."
	msgBotTypeNotFound    = "Тип бота не найден."
	msgAskNotifyTarget    = "Введите новый ID получателя уведомлений (целое число):"
	msgNotifyTargetInvalid = "Пожалуйста, введите корректный числовой ID."
	msgNoRatingsYet       = "Оценок пока нет."
	msgAdminExited        = "Вы вышли из админ-панели."
	msgActionCancelled    = "Действие отменено."

	cancelLabel = "Отмена"
)

// fmt templates for confirmations.
const (
	msgIndustryAddedFmt      = "Отрасль '%s' добавлена."
	msgIndustryRemovedFmt    = "Отрасль '%s' удалена."
	msgBotTypeAddedFmt       = "Тип бота '%s' добавлен."
	msgBotTypeRemovedFmt     = "Тип бота '%s' удален."
	msgNotifyTargetSetFmt    = "ID получателя уведомлений изменен на %d."
	msgAverageRatingFmt      = "Средняя оценка пользователей: %.2f"
	msgApplicationCreatedFmt = "Ваша заявка на создание умного бота для %s успешно создана!\n" +
		"Оцените, пожалуйста, насколько было удобно работать с заявкой (от 1 до 5)."
)
