// Package campaigns supervises external fuzzer processes, one per repository name.
//
// A Supervisor keeps an in-memory map from repository name to
// entities.CampaignState. Start spawns the fuzzer and records RunningState;
// a background monitor then waits for the process and records StoppedState
// (or ErrorState when the wait itself fails). Stop sends SIGINT and removes
// the entry without waiting for the process to exit.
//
// Each Start stamps its entry with a run token. A monitor only writes when
// the entry still carries its token, so exits of stopped or restarted runs
// never overwrite the state of a newer campaign with the same name.
package campaigns
