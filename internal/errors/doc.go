// Package errors provides the structured error type shared by every layer of tamagotchi-api.
//
// Errors carry a Code, a message that is safe to show to the person chatting with the
// bot, an optional cause and free-form metadata:
//
//	err := errors.NotFoundf("no pet for user %s", userID).
//	    WithMeta("user_id", userID)
//
// # Layer guidelines
//
// Repositories return NotFound / InvalidArgument / DataLoss and wrap storage
// failures with Wrap, which keeps the code of a wrapped *Error and falls back to
// Internal otherwise.
//
// The simulation engine reports care guards as FailedPrecondition ("not hungry",
// "already asleep") and cooldowns or forced rest as ResourceExhausted with a
// "retry_in_seconds" meta entry. Neither mutates the creature.
//
// Orchestrators validate input with ValidationBuilder and wrap repository errors with
// business context.
//
// Handlers never surface internal detail: UserMessage turns user-facing codes into their
// message and everything else into GenericApology, while ToGRPCError maps codes onto
// gRPC statuses for the BotService transport.
package errors
