package terminfo

// Generated from the predefined terminfo capability name tables.
// Index order mirrors ncurses term.h; do not reorder or re-sort.

var boolNames = [44]capName{
	{short: "bw", long: "auto_left_margin"},
	{short: "am", long: "auto_right_margin"},
	{short: "xsb", long: "no_esc_ctlc"},
	{short: "xhp", long: "ceol_standout_glitch"},
	{short: "xenl", long: "eat_newline_glitch"},
	{short: "eo", long: "erase_overstrike"},
	{short: "gn", long: "generic_type"},
	{short: "hc", long: "hard_copy"},
	{short: "km", long: "has_meta_key"},
	{short: "hs", long: "has_status_line"},
	{short: "in_", long: "insert_null_glitch"},
	{short: "db", long: "memory_above"},
	{short: "da", long: "memory_below"},
	{short: "mir", long: "move_insert_mode"},
	{short: "msgr", long: "move_standout_mode"},
	{short: "os", long: "over_strike"},
	{short: "eslok", long: "status_line_esc_ok"},
	{short: "xt", long: "dest_tabs_magic_smso"},
	{short: "hz", long: "tilde_glitch"},
	{short: "ul", long: "transparent_underline"},
	{short: "xon", long: "xon_xoff"},
	{short: "nxon", long: "needs_xon_xoff"},
	{short: "mc5i", long: "prtr_silent"},
	{short: "chts", long: "hard_cursor"},
	{short: "nrrmc", long: "non_rev_rmcup"},
	{short: "npc", long: "no_pad_char"},
	{short: "ndscr", long: "non_dest_scroll_region"},
	{short: "ccc", long: "can_change"},
	{short: "bce", long: "back_color_erase"},
	{short: "hls", long: "hue_lightness_saturation"},
	{short: "xhpa", long: "col_addr_glitch"},
	{short: "crxm", long: "cr_cancels_micro_mode"},
	{short: "daisy", long: "has_print_wheel"},
	{short: "xvpa", long: "row_addr_glitch"},
	{short: "sam", long: "semi_auto_right_margin"},
	{short: "cpix", long: "cpi_changes_res"},
	{short: "lpix", long: "lpi_changes_res"},
	{short: "OTbs_b", long: "backspaces_with_bs"},
	{short: "OTns", long: "crt_no_scrolling"},
	{short: "OTnc", long: "no_correctly_working_cr"},
	{short: "OTMT", long: "gnu_has_meta_key"},
	{short: "OTNL", long: "linefeed_is_newline"},
	{short: "OTpt", long: "has_hardware_tabs"},
	{short: "OTxr", long: "return_does_clr_eol"},
}

var numNames = [39]capName{
	{short: "cols", long: "columns"},
	{short: "it", long: "init_tabs"},
	{short: "lines", long: "lines"},
	{short: "lm", long: "lines_of_memory"},
	{short: "xmc", long: "magic_cookie_glitch"},
	{short: "pb", long: "padding_baud_rate"},
	{short: "vt", long: "virtual_terminal"},
	{short: "wsl", long: "width_status_line"},
	{short: "nlab", long: "num_labels"},
	{short: "lh", long: "label_height"},
	{short: "lw", long: "label_width"},
	{short: "ma", long: "max_attributes"},
	{short: "wnum", long: "maximum_windows"},
	{short: "colors", long: "max_colors"},
	{short: "pairs", long: "max_pairs"},
	{short: "ncv", long: "no_color_video"},
	{short: "bufsz", long: "buffer_capacity"},
	{short: "spinv", long: "dot_vert_spacing"},
	{short: "spinh", long: "dot_horz_spacing"},
	{short: "maddr", long: "max_micro_address"},
	{short: "mjump", long: "max_micro_jump"},
	{short: "mcs", long: "micro_col_size"},
	{short: "mls", long: "micro_line_size"},
	{short: "npins", long: "number_of_pins"},
	{short: "orc", long: "output_res_char"},
	{short: "orl", long: "output_res_line"},
	{short: "orhi", long: "output_res_horz_inch"},
	{short: "orvi", long: "output_res_vert_inch"},
	{short: "cps", long: "print_rate"},
	{short: "widcs", long: "wide_char_size"},
	{short: "btns", long: "buttons"},
	{short: "bitwin", long: "bit_image_entwining"},
	{short: "bitype", long: "bit_image_type"},
	{short: "UTug", long: "magic_cookie_glitch_ul"},
	{short: "OTdC", long: "carriage_return_delay"},
	{short: "OTdN", long: "new_line_delay"},
	{short: "OTdB", long: "backspace_delay"},
	{short: "OTdT", long: "horizontal_tab_delay"},
	{short: "OTkn", long: "number_of_function_keys"},
}

var strNames = [414]capName{
	{short: "cbt", long: "back_tab"},
	{short: "bel", long: "bell"},
	{short: "cr", long: "carriage_return"},
	{short: "csr", long: "change_scroll_region"},
	{short: "tbc", long: "clear_all_tabs"},
	{short: "clear", long: "clear_screen"},
	{short: "el", long: "clr_eol"},
	{short: "ed", long: "clr_eos"},
	{short: "hpa", long: "column_address"},
	{short: "cmdch", long: "command_character"},
	{short: "cup", long: "cursor_address"},
	{short: "cud1", long: "cursor_down"},
	{short: "home", long: "cursor_home"},
	{short: "civis", long: "cursor_invisible"},
	{short: "cub1", long: "cursor_left"},
	{short: "mrcup", long: "cursor_mem_address"},
	{short: "cnorm", long: "cursor_normal"},
	{short: "cuf1", long: "cursor_right"},
	{short: "ll", long: "cursor_to_ll"},
	{short: "cuu1", long: "cursor_up"},
	{short: "cvvis", long: "cursor_visible"},
	{short: "dch1", long: "delete_character"},
	{short: "dl1", long: "delete_line"},
	{short: "dsl", long: "dis_status_line"},
	{short: "hd", long: "down_half_line"},
	{short: "smacs", long: "enter_alt_charset_mode"},
	{short: "blink", long: "enter_blink_mode"},
	{short: "bold", long: "enter_bold_mode"},
	{short: "smcup", long: "enter_ca_mode"},
	{short: "smdc", long: "enter_delete_mode"},
	{short: "dim", long: "enter_dim_mode"},
	{short: "smir", long: "enter_insert_mode"},
	{short: "invis", long: "enter_secure_mode"},
	{short: "prot", long: "enter_protected_mode"},
	{short: "rev", long: "enter_reverse_mode"},
	{short: "smso", long: "enter_standout_mode"},
	{short: "smul", long: "enter_underline_mode"},
	{short: "ech", long: "erase_chars"},
	{short: "rmacs", long: "exit_alt_charset_mode"},
	{short: "sgr0", long: "exit_attribute_mode"},
	{short: "rmcup", long: "exit_ca_mode"},
	{short: "rmdc", long: "exit_delete_mode"},
	{short: "rmir", long: "exit_insert_mode"},
	{short: "rmso", long: "exit_standout_mode"},
	{short: "rmul", long: "exit_underline_mode"},
	{short: "flash", long: "flash_screen"},
	{short: "ff", long: "form_feed"},
	{short: "fsl", long: "from_status_line"},
	{short: "is1", long: "init_1string"},
	{short: "is2", long: "init_2string"},
	{short: "is3", long: "init_3string"},
	{short: "if_", long: "init_file"},
	{short: "ich1", long: "insert_character"},
	{short: "il1", long: "insert_line"},
	{short: "ip", long: "insert_padding"},
	{short: "kbs", long: "key_backspace"},
	{short: "ktbc", long: "key_catab"},
	{short: "kclr", long: "key_clear"},
	{short: "kctab", long: "key_ctab"},
	{short: "kdch1", long: "key_dc"},
	{short: "kdl1", long: "key_dl"},
	{short: "kcud1", long: "key_down"},
	{short: "krmir", long: "key_eic"},
	{short: "kel", long: "key_eol"},
	{short: "ked", long: "key_eos"},
	{short: "kf0", long: "key_f0"},
	{short: "kf1", long: "key_f1"},
	{short: "kf10", long: "key_f10"},
	{short: "kf2", long: "key_f2"},
	{short: "kf3", long: "key_f3"},
	{short: "kf4", long: "key_f4"},
	{short: "kf5", long: "key_f5"},
	{short: "kf6", long: "key_f6"},
	{short: "kf7", long: "key_f7"},
	{short: "kf8", long: "key_f8"},
	{short: "kf9", long: "key_f9"},
	{short: "khome", long: "key_home"},
	{short: "kich1", long: "key_ic"},
	{short: "kil1", long: "key_il"},
	{short: "kcub1", long: "key_left"},
	{short: "kll", long: "key_ll"},
	{short: "knp", long: "key_npage"},
	{short: "kpp", long: "key_ppage"},
	{short: "kcuf1", long: "key_right"},
	{short: "kind", long: "key_sf"},
	{short: "kri", long: "key_sr"},
	{short: "khts", long: "key_stab"},
	{short: "kcuu1", long: "key_up"},
	{short: "rmkx", long: "keypad_local"},
	{short: "smkx", long: "keypad_xmit"},
	{short: "lf0", long: "lab_f0"},
	{short: "lf1", long: "lab_f1"},
	{short: "lf10", long: "lab_f10"},
	{short: "lf2", long: "lab_f2"},
	{short: "lf3", long: "lab_f3"},
	{short: "lf4", long: "lab_f4"},
	{short: "lf5", long: "lab_f5"},
	{short: "lf6", long: "lab_f6"},
	{short: "lf7", long: "lab_f7"},
	{short: "lf8", long: "lab_f8"},
	{short: "lf9", long: "lab_f9"},
	{short: "rmm", long: "meta_off"},
	{short: "smm", long: "meta_on"},
	{short: "nel", long: "newline"},
	{short: "pad", long: "pad_char"},
	{short: "dch", long: "parm_dch"},
	{short: "dl", long: "parm_delete_line"},
	{short: "cud", long: "parm_down_cursor"},
	{short: "ich", long: "parm_ich"},
	{short: "indn", long: "parm_index"},
	{short: "il", long: "parm_insert_line"},
	{short: "cub", long: "parm_left_cursor"},
	{short: "cuf", long: "parm_right_cursor"},
	{short: "rin", long: "parm_rindex"},
	{short: "cuu", long: "parm_up_cursor"},
	{short: "pfkey", long: "pkey_key"},
	{short: "pfloc", long: "pkey_local"},
	{short: "pfx", long: "pkey_xmit"},
	{short: "mc0", long: "print_screen"},
	{short: "mc4", long: "prtr_off"},
	{short: "mc5", long: "prtr_on"},
	{short: "rep", long: "repeat_char"},
	{short: "rs1", long: "reset_1string"},
	{short: "rs2", long: "reset_2string"},
	{short: "rs3", long: "reset_3string"},
	{short: "rf", long: "reset_file"},
	{short: "rc", long: "restore_cursor"},
	{short: "vpa", long: "row_address"},
	{short: "sc", long: "save_cursor"},
	{short: "ind", long: "scroll_forward"},
	{short: "ri", long: "scroll_reverse"},
	{short: "sgr", long: "set_attributes"},
	{short: "hts", long: "set_tab"},
	{short: "wind", long: "set_window"},
	{short: "ht", long: "tab"},
	{short: "tsl", long: "to_status_line"},
	{short: "uc", long: "underline_char"},
	{short: "hu", long: "up_half_line"},
	{short: "iprog", long: "init_prog"},
	{short: "ka1", long: "key_a1"},
	{short: "ka3", long: "key_a3"},
	{short: "kb2", long: "key_b2"},
	{short: "kc1", long: "key_c1"},
	{short: "kc3", long: "key_c3"},
	{short: "mc5p", long: "prtr_non"},
	{short: "rmp", long: "char_padding"},
	{short: "acsc", long: "acs_chars"},
	{short: "pln", long: "plab_norm"},
	{short: "kcbt", long: "key_btab"},
	{short: "smxon", long: "enter_xon_mode"},
	{short: "rmxon", long: "exit_xon_mode"},
	{short: "smam", long: "enter_am_mode"},
	{short: "rmam", long: "exit_am_mode"},
	{short: "xonc", long: "xon_character"},
	{short: "xoffc", long: "xoff_character"},
	{short: "enacs", long: "ena_acs"},
	{short: "smln", long: "label_on"},
	{short: "rmln", long: "label_off"},
	{short: "kbeg", long: "key_beg"},
	{short: "kcan", long: "key_cancel"},
	{short: "kclo", long: "key_close"},
	{short: "kcmd", long: "key_command"},
	{short: "kcpy", long: "key_copy"},
	{short: "kcrt", long: "key_create"},
	{short: "kend", long: "key_end"},
	{short: "kent", long: "key_enter"},
	{short: "kext", long: "key_exit"},
	{short: "kfnd", long: "key_find"},
	{short: "khlp", long: "key_help"},
	{short: "kmrk", long: "key_mark"},
	{short: "kmsg", long: "key_message"},
	{short: "kmov", long: "key_move"},
	{short: "knxt", long: "key_next"},
	{short: "kopn", long: "key_open"},
	{short: "kopt", long: "key_options"},
	{short: "kprv", long: "key_previous"},
	{short: "kprt", long: "key_print"},
	{short: "krdo", long: "key_redo"},
	{short: "kref", long: "key_reference"},
	{short: "krfr", long: "key_refresh"},
	{short: "krpl", long: "key_replace"},
	{short: "krst", long: "key_restart"},
	{short: "kres", long: "key_resume"},
	{short: "ksav", long: "key_save"},
	{short: "kspd", long: "key_suspend"},
	{short: "kund", long: "key_undo"},
	{short: "kBEG", long: "key_sbeg"},
	{short: "kCAN", long: "key_scancel"},
	{short: "kCMD", long: "key_scommand"},
	{short: "kCPY", long: "key_scopy"},
	{short: "kCRT", long: "key_screate"},
	{short: "kDC", long: "key_sdc"},
	{short: "kDL", long: "key_sdl"},
	{short: "kslt", long: "key_select"},
	{short: "kEND", long: "key_send"},
	{short: "kEOL", long: "key_seol"},
	{short: "kEXT", long: "key_sexit"},
	{short: "kFND", long: "key_sfind"},
	{short: "kHLP", long: "key_shelp"},
	{short: "kHOM", long: "key_shome"},
	{short: "kIC", long: "key_sic"},
	{short: "kLFT", long: "key_sleft"},
	{short: "kMSG", long: "key_smessage"},
	{short: "kMOV", long: "key_smove"},
	{short: "kNXT", long: "key_snext"},
	{short: "kOPT", long: "key_soptions"},
	{short: "kPRV", long: "key_sprevious"},
	{short: "kPRT", long: "key_sprint"},
	{short: "kRDO", long: "key_sredo"},
	{short: "kRPL", long: "key_sreplace"},
	{short: "kRIT", long: "key_sright"},
	{short: "kRES", long: "key_srsume"},
	{short: "kSAV", long: "key_ssave"},
	{short: "kSPD", long: "key_ssuspend"},
	{short: "kUND", long: "key_sundo"},
	{short: "rfi", long: "req_for_input"},
	{short: "kf11", long: "key_f11"},
	{short: "kf12", long: "key_f12"},
	{short: "kf13", long: "key_f13"},
	{short: "kf14", long: "key_f14"},
	{short: "kf15", long: "key_f15"},
	{short: "kf16", long: "key_f16"},
	{short: "kf17", long: "key_f17"},
	{short: "kf18", long: "key_f18"},
	{short: "kf19", long: "key_f19"},
	{short: "kf20", long: "key_f20"},
	{short: "kf21", long: "key_f21"},
	{short: "kf22", long: "key_f22"},
	{short: "kf23", long: "key_f23"},
	{short: "kf24", long: "key_f24"},
	{short: "kf25", long: "key_f25"},
	{short: "kf26", long: "key_f26"},
	{short: "kf27", long: "key_f27"},
	{short: "kf28", long: "key_f28"},
	{short: "kf29", long: "key_f29"},
	{short: "kf30", long: "key_f30"},
	{short: "kf31", long: "key_f31"},
	{short: "kf32", long: "key_f32"},
	{short: "kf33", long: "key_f33"},
	{short: "kf34", long: "key_f34"},
	{short: "kf35", long: "key_f35"},
	{short: "kf36", long: "key_f36"},
	{short: "kf37", long: "key_f37"},
	{short: "kf38", long: "key_f38"},
	{short: "kf39", long: "key_f39"},
	{short: "kf40", long: "key_f40"},
	{short: "kf41", long: "key_f41"},
	{short: "kf42", long: "key_f42"},
	{short: "kf43", long: "key_f43"},
	{short: "kf44", long: "key_f44"},
	{short: "kf45", long: "key_f45"},
	{short: "kf46", long: "key_f46"},
	{short: "kf47", long: "key_f47"},
	{short: "kf48", long: "key_f48"},
	{short: "kf49", long: "key_f49"},
	{short: "kf50", long: "key_f50"},
	{short: "kf51", long: "key_f51"},
	{short: "kf52", long: "key_f52"},
	{short: "kf53", long: "key_f53"},
	{short: "kf54", long: "key_f54"},
	{short: "kf55", long: "key_f55"},
	{short: "kf56", long: "key_f56"},
	{short: "kf57", long: "key_f57"},
	{short: "kf58", long: "key_f58"},
	{short: "kf59", long: "key_f59"},
	{short: "kf60", long: "key_f60"},
	{short: "kf61", long: "key_f61"},
	{short: "kf62", long: "key_f62"},
	{short: "kf63", long: "key_f63"},
	{short: "el1", long: "clr_bol"},
	{short: "mgc", long: "clear_margins"},
	{short: "smgl", long: "set_left_margin"},
	{short: "smgr", long: "set_right_margin"},
	{short: "fln", long: "label_format"},
	{short: "sclk", long: "set_clock"},
	{short: "dclk", long: "display_clock"},
	{short: "rmclk", long: "remove_clock"},
	{short: "cwin", long: "create_window"},
	{short: "wingo", long: "goto_window"},
	{short: "hup", long: "hangup"},
	{short: "dial", long: "dial_phone"},
	{short: "qdial", long: "quick_dial"},
	{short: "tone", long: "tone"},
	{short: "pulse", long: "pulse"},
	{short: "hook", long: "flash_hook"},
	{short: "pause", long: "fixed_pause"},
	{short: "wait", long: "wait_tone"},
	{short: "u0", long: "user0"},
	{short: "u1", long: "user1"},
	{short: "u2", long: "user2"},
	{short: "u3", long: "user3"},
	{short: "u4", long: "user4"},
	{short: "u5", long: "user5"},
	{short: "u6", long: "user6"},
	{short: "u7", long: "user7"},
	{short: "u8", long: "user8"},
	{short: "u9", long: "user9"},
	{short: "op", long: "orig_pair"},
	{short: "oc", long: "orig_colors"},
	{short: "initc", long: "initialize_color"},
	{short: "initp", long: "initialize_pair"},
	{short: "scp", long: "set_color_pair"},
	{short: "setf", long: "set_foreground"},
	{short: "setb", long: "set_background"},
	{short: "cpi", long: "change_char_pitch"},
	{short: "lpi", long: "change_line_pitch"},
	{short: "chr", long: "change_res_horz"},
	{short: "cvr", long: "change_res_vert"},
	{short: "defc", long: "define_char"},
	{short: "swidm", long: "enter_doublewide_mode"},
	{short: "sdrfq", long: "enter_draft_quality"},
	{short: "sitm", long: "enter_italics_mode"},
	{short: "slm", long: "enter_leftward_mode"},
	{short: "smicm", long: "enter_micro_mode"},
	{short: "snlq", long: "enter_near_letter_quality"},
	{short: "snrmq", long: "enter_normal_quality"},
	{short: "sshm", long: "enter_shadow_mode"},
	{short: "ssubm", long: "enter_subscript_mode"},
	{short: "ssupm", long: "enter_superscript_mode"},
	{short: "sum", long: "enter_upward_mode"},
	{short: "rwidm", long: "exit_doublewide_mode"},
	{short: "ritm", long: "exit_italics_mode"},
	{short: "rlm", long: "exit_leftward_mode"},
	{short: "rmicm", long: "exit_micro_mode"},
	{short: "rshm", long: "exit_shadow_mode"},
	{short: "rsubm", long: "exit_subscript_mode"},
	{short: "rsupm", long: "exit_superscript_mode"},
	{short: "rum", long: "exit_upward_mode"},
	{short: "mhpa", long: "micro_column_address"},
	{short: "mcud1", long: "micro_down"},
	{short: "mcub1", long: "micro_left"},
	{short: "mcuf1", long: "micro_right"},
	{short: "mvpa", long: "micro_row_address"},
	{short: "mcuu1", long: "micro_up"},
	{short: "porder", long: "order_of_pins"},
	{short: "mcud", long: "parm_down_micro"},
	{short: "mcub", long: "parm_left_micro"},
	{short: "mcuf", long: "parm_right_micro"},
	{short: "mcuu", long: "parm_up_micro"},
	{short: "scs", long: "select_char_set"},
	{short: "smgb", long: "set_bottom_margin"},
	{short: "smgbp", long: "set_bottom_margin_parm"},
	{short: "smglp", long: "set_left_margin_parm"},
	{short: "smgrp", long: "set_right_margin_parm"},
	{short: "smgt", long: "set_top_margin"},
	{short: "smgtp", long: "set_top_margin_parm"},
	{short: "sbim", long: "start_bit_image"},
	{short: "scsd", long: "start_char_set_def"},
	{short: "rbim", long: "stop_bit_image"},
	{short: "rcsd", long: "stop_char_set_def"},
	{short: "subcs", long: "subscript_characters"},
	{short: "supcs", long: "superscript_characters"},
	{short: "docr", long: "these_cause_cr"},
	{short: "zerom", long: "zero_motion"},
	{short: "csnm", long: "char_set_names"},
	{short: "kmous", long: "key_mouse"},
	{short: "minfo", long: "mouse_info"},
	{short: "reqmp", long: "req_mouse_pos"},
	{short: "getm", long: "get_mouse"},
	{short: "setaf", long: "set_a_foreground"},
	{short: "setab", long: "set_a_background"},
	{short: "pfxl", long: "pkey_plab"},
	{short: "devt", long: "device_type"},
	{short: "csin", long: "code_set_init"},
	{short: "s0ds", long: "set0_des_seq"},
	{short: "s1ds", long: "set1_des_seq"},
	{short: "s2ds", long: "set2_des_seq"},
	{short: "s3ds", long: "set3_des_seq"},
	{short: "smglr", long: "set_lr_margin"},
	{short: "smgtb", long: "set_tb_margin"},
	{short: "birep", long: "bit_image_repeat"},
	{short: "binel", long: "bit_image_newline"},
	{short: "bicr", long: "bit_image_carriage_return"},
	{short: "colornm", long: "color_names"},
	{short: "defbi", long: "define_bit_image_region"},
	{short: "endbi", long: "end_bit_image_region"},
	{short: "setcolor", long: "set_color_band"},
	{short: "slines", long: "set_page_length"},
	{short: "dispc", long: "display_pc_char"},
	{short: "smpch", long: "enter_pc_charset_mode"},
	{short: "rmpch", long: "exit_pc_charset_mode"},
	{short: "smsc", long: "enter_scancode_mode"},
	{short: "rmsc", long: "exit_scancode_mode"},
	{short: "pctrm", long: "pc_term_options"},
	{short: "scesc", long: "scancode_escape"},
	{short: "scesa", long: "alt_scancode_esc"},
	{short: "ehhlm", long: "enter_horizontal_hl_mode"},
	{short: "elhlm", long: "enter_left_hl_mode"},
	{short: "elohlm", long: "enter_low_hl_mode"},
	{short: "erhlm", long: "enter_right_hl_mode"},
	{short: "ethlm", long: "enter_top_hl_mode"},
	{short: "evhlm", long: "enter_vertical_hl_mode"},
	{short: "sgr1", long: "set_a_attributes"},
	{short: "slength", long: "set_pglen_inch"},
	{short: "OTi2", long: "termcap_init2"},
	{short: "OTrs", long: "termcap_reset"},
	{short: "OTnl", long: "linefeed_if_not_lf"},
	{short: "OTbs_s", long: "backspace_if_not_bs"},
	{short: "OTko", long: "other_non_function_keys"},
	{short: "OTma", long: "arrow_key_map"},
	{short: "OTG2", long: "acs_ulcorner"},
	{short: "OTG3", long: "acs_llcorner"},
	{short: "OTG1", long: "acs_urcorner"},
	{short: "OTG4", long: "acs_lrcorner"},
	{short: "OTGR", long: "acs_ltee"},
	{short: "OTGL", long: "acs_rtee"},
	{short: "OTGU", long: "acs_btee"},
	{short: "OTGD", long: "acs_ttee"},
	{short: "OTGH", long: "acs_hline"},
	{short: "OTGV", long: "acs_vline"},
	{short: "OTGC", long: "acs_plus"},
	{short: "meml", long: "memory_lock"},
	{short: "memu", long: "memory_unlock"},
	{short: "box1", long: "box_chars_1"},
}