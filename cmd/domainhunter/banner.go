// (c) The domainhunter authors 2024
//
// SPDX-License-Identifier: MIT

package main

// banner greets the hunter at scan start; suppress with --quiet.
const banner = `    ____                        _       __  __            __
   / __ \____  ____ ___  ____ _(_)___  / / / /_  ______  / /____  _____
  / / / / __ \/ __ '__ \/ __ '/ / __ \/ /_/ / / / / __ \/ __/ _ \/ ___/
 / /_/ / /_/ / / / / / / /_/ / / / / / __  / /_/ / / / / /_/  __/ /
/_____/\____/_/ /_/ /_/\__,_/_/_/ /_/_/ /_/\__,_/_/ /_/\__/\___/_/`
